package onair

import (
	"errors"
	"net/url"
	"time"
)

// DefaultLookAhead 节目单查询窗口在次日凌晨之后额外向后查询的时长（691200秒，即8天）
const DefaultLookAhead = 691200 * time.Second

type Config struct {
	ProgramsURL string            `json:"programsURL" yaml:"programsURL"`       // 必填，查询节目单的接口地址
	StationsURL string            `json:"stationsURL" yaml:"stationsURL"`       // 必填，查询电台列表的接口地址
	Headers     map[string]string `json:"headers,omitempty" yaml:"headers"`     // 自定义HTTP请求头
	LookAhead   time.Duration     `json:"lookAhead,omitempty" yaml:"lookAhead"` // 节目单窗口额外向后查询的时长，为空时使用DefaultLookAhead
	Timezone    string            `json:"timezone,omitempty" yaml:"timezone"`   // 计算零点和展示时间使用的时区，为空时使用本地时区
}

func (c *Config) Validate() error {
	// 校验config配置
	if c.ProgramsURL == "" ||
		c.StationsURL == "" {
		return errors.New("invalid onair client config")
	}

	for _, rawURL := range []string{c.ProgramsURL, c.StationsURL} {
		u, err := url.Parse(rawURL)
		if err != nil {
			return err
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.New("onair api url must be http or https: " + rawURL)
		}
	}

	if c.LookAhead < 0 {
		return errors.New("lookAhead cannot be negative")
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location 获取配置的时区
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// WindowLookAhead 获取节目单窗口的额外查询时长
func (c *Config) WindowLookAhead() time.Duration {
	if c.LookAhead == 0 {
		return DefaultLookAhead
	}
	return c.LookAhead
}

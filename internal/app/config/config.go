package config

import (
	"errors"
	"onair/internal/app/onair"
	"onair/internal/pkg/logging"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const defaultTimeout = 10 * time.Second

type ImagesConfig struct {
	ProgramIconBaseURL string `json:"programIconBaseURL" yaml:"programIconBaseURL"` // 节目缩略图的Base URL
	StationLogoBaseURL string `json:"stationLogoBaseURL" yaml:"stationLogoBaseURL"` // 台标的Base URL
	StationLogoPrefix  string `json:"stationLogoPrefix" yaml:"stationLogoPrefix"`   // 台标文件名前缀
}

type CacheConfig struct {
	StationsTTL time.Duration `json:"stationsTTL" yaml:"stationsTTL"` // 电台列表的缓存时间，0表示不缓存
	RefreshCron string        `json:"refreshCron" yaml:"refreshCron"` // 定时刷新电台列表缓存的cron表达式，为空则不刷新
}

type CORSConfig struct {
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins,omitempty"` // 允许跨域访问的来源，为空则不允许跨域
}

type Config struct {
	API     *onair.Config      `json:"api" yaml:"api"`         // 必填，远程接口配置
	Images  *ImagesConfig      `json:"images" yaml:"images"`   // 必填，图片地址配置
	Timeout time.Duration      `json:"timeout" yaml:"timeout"` // 请求远程接口的超时时间
	Cache   CacheConfig        `json:"cache" yaml:"cache"`     // 缓存配置
	CORS    CORSConfig         `json:"cors" yaml:"cors"`       // 跨域配置
	Log     *logging.LogConfig `json:"log" yaml:"log"`         // 日志配置
}

func (c *Config) Validate() error {
	// 校验config配置
	if c.API == nil ||
		c.Images == nil ||
		c.Images.ProgramIconBaseURL == "" ||
		c.Images.StationLogoBaseURL == "" {
		return errors.New("invalid onair config")
	}

	if err := c.API.Validate(); err != nil {
		return err
	}

	// L()：获取全局logger
	logger := zap.L()

	if c.Timeout <= 0 {
		logger.Warn("The request timeout is not set. Use the default value.", zap.Duration("timeout", defaultTimeout))
		c.Timeout = defaultTimeout
	}

	if c.Cache.StationsTTL < 0 {
		return errors.New("stationsTTL cannot be negative")
	}

	// 校验定时刷新的cron表达式
	if c.Cache.RefreshCron != "" {
		if _, err := cron.ParseStandard(c.Cache.RefreshCron); err != nil {
			return err
		}
		if c.Cache.StationsTTL == 0 {
			logger.Warn("The station cache is disabled, refreshCron has no effect.", zap.String("refreshCron", c.Cache.RefreshCron))
		}
	}

	return nil
}

func Load(fPath string) (*Config, error) {
	// 读取配置文件
	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default 缺省配置
func Default() *Config {
	return &Config{
		API: &onair.Config{
			ProgramsURL: "http://api.stanwood.de/webservices/onair/android_0_7_0_de_programData/getPrograms.jsonp.php5",
			StationsURL: "http://api.stanwood.de/webservices/onair/android_0_7_0_de_programData/getStations.jsonp.php5",
			Headers: map[string]string{
				"User-Agent": "onair/1.0",
			},
			LookAhead: onair.DefaultLookAhead,
			Timezone:  "Europe/Berlin",
		},
		Images: &ImagesConfig{
			ProgramIconBaseURL: "http://api.stanwood.de/images/programs/de",
			StationLogoBaseURL: "http://api.stanwood.de/images/logos/de",
			StationLogoPrefix:  "bunt_",
		},
		Timeout: defaultTimeout,
		Log: &logging.LogConfig{
			Level:      zapcore.InfoLevel,
			FileName:   "onair.log",
			MaxSize:    10,
			MaxAge:     7,
			MaxBackups: 3,
			IsStdout:   true,
		},
	}
}

func CreateDefaultCfg(fPath string) error {
	// 写入默认配置
	f, err := os.Create(fPath)
	if err != nil {
		return err
	}
	defer f.Close()

	// 创建编码器
	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(Default())
}

package onair

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/goccy/go-json"
)

// jsonpRegex 提取JSONP回调函数中包裹的JSON内容，例如：jQuery123_456([...]);
var jsonpRegex = regexp.MustCompile(`(?s)^[A-Za-z_$][\w$.]*\s*\((.*)\)\s*;?$`)

// decodePayload 解析接口返回的JSON数组，兼容JSONP格式
func decodePayload(body []byte, out any) error {
	data := bytes.TrimSpace(bytes.TrimPrefix(body, []byte("\xef\xbb\xbf")))

	// 不是JSON数组时尝试按JSONP格式提取
	if len(data) == 0 || data[0] != '[' {
		matches := jsonpRegex.FindSubmatch(data)
		if len(matches) != 2 {
			return fmt.Errorf("%w: response is neither a json array nor jsonp", ErrInvalidPayload)
		}
		data = bytes.TrimSpace(matches[1])
		if len(data) == 0 || data[0] != '[' {
			return fmt.Errorf("%w: jsonp callback does not wrap a json array", ErrInvalidPayload)
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

// flexString 兼容字符串和数字类型的字段，null视为空字符串
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		return nil
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	default:
		if _, err := strconv.ParseFloat(string(b), 64); err != nil {
			return fmt.Errorf("unexpected value %s", b)
		}
		*s = flexString(b)
		return nil
	}
}

// epochSeconds 将字段解析为秒级时间戳
func (s flexString) epochSeconds() (int64, error) {
	if v, err := strconv.ParseInt(string(s), 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(string(s), 64)
	// NaN、Inf及超出int64范围的值都不是合法的时间戳
	if err != nil || math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("not an epoch timestamp: %q", string(s))
	}
	return int64(f), nil
}

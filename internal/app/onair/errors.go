package onair

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRequestFailed  = errors.New("request failed")
	ErrInvalidPayload = errors.New("invalid payload")
)

// RequestError 请求远程接口失败
type RequestError struct {
	Op         string // 操作名称，例如：programs
	URL        string // 请求地址
	StatusCode int    // HTTP状态码，网络错误时为0
	Transient  bool   // 是否为暂时性错误
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s: http status code: %d", e.Op, ErrRequestFailed, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrRequestFailed, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// IsTransient 判断错误是否为暂时性错误（稍后重试可能成功）
func IsTransient(err error) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Transient
	}
	return false
}

// newStatusError 根据HTTP状态码创建错误
func newStatusError(op, rawURL string, statusCode int) *RequestError {
	return &RequestError{
		Op:         op,
		URL:        rawURL,
		StatusCode: statusCode,
		Transient:  statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests,
	}
}

// newTransportError 根据网络错误创建错误，网络错误均视为暂时性错误
func newTransportError(op, rawURL string, err error) *RequestError {
	return &RequestError{
		Op:        op,
		URL:       rawURL,
		Transient: true,
		Err:       err,
	}
}

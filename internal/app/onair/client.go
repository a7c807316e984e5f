package onair

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// maxBodySize 响应内容的最大长度
const maxBodySize = 8 << 20

type Client struct {
	httpClient *http.Client // HTTP客户端
	config     *Config      // 接口配置

	logger *zap.Logger // 日志
}

func NewClient(httpClient *http.Client, config *Config) (*Client, error) {
	// config不能为空
	if config == nil {
		return nil, fmt.Errorf("client config is nil")
	} else if err := config.Validate(); err != nil { // 校验config配置
		return nil, err
	}

	c := Client{
		httpClient: httpClient,
		config:     config,
		logger:     zap.L(),
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return &c, nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	// 设置自定义HTTP请求头
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
}

// getJSON 执行GET请求并将JSON（或JSONP）响应解析到out中
func (c *Client) getJSON(ctx context.Context, op, rawURL string, params url.Values, out any) error {
	// 创建请求
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	// 增加请求参数
	if len(params) > 0 {
		query := req.URL.Query()
		for k, values := range params {
			for _, v := range values {
				query.Add(k, v)
			}
		}
		req.URL.RawQuery = query.Encode()
	}

	// 设置请求头
	c.setCommonHeaders(req)

	c.logger.Debug("Doing request.", zap.String("op", op), zap.String("url", req.URL.String()))

	// 执行请求
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// 请求被主动取消时直接返回context的错误
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", op, ctxErr)
		}
		return newTransportError(op, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newStatusError(op, rawURL, resp.StatusCode)
	}

	// 读取响应内容
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", op, ctxErr)
		}
		return newTransportError(op, rawURL, err)
	}

	// 解析响应内容
	if err = decodePayload(body, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

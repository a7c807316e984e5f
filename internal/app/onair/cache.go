package onair

import (
	"context"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const stationsCacheKey = "stations"

// CachedClient 在Client的基础上缓存电台列表，节目单不做缓存
type CachedClient struct {
	*Client

	ttl   time.Duration
	cache *cache.Cache
}

// NewCachedClient ttl小于等于0时不缓存，每次都请求远程接口
func NewCachedClient(client *Client, ttl time.Duration) *CachedClient {
	c := CachedClient{
		Client: client,
		ttl:    ttl,
	}
	if ttl > 0 {
		c.cache = cache.New(ttl, 2*ttl)
	}
	return &c
}

// GetStations 获取全部电台列表，优先使用缓存
func (c *CachedClient) GetStations(ctx context.Context) ([]Station, error) {
	if c.cache == nil {
		return c.Client.GetStations(ctx)
	}

	if cached, ok := c.cache.Get(stationsCacheKey); ok {
		return slices.Clone(cached.([]Station)), nil
	}

	stations, err := c.Client.GetStations(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(stationsCacheKey, stations, cache.DefaultExpiration)
	return slices.Clone(stations), nil
}

// RefreshStations 强制刷新缓存的电台列表
func (c *CachedClient) RefreshStations(ctx context.Context) error {
	stations, err := c.Client.GetStations(ctx)
	if err != nil {
		return err
	}

	if c.cache != nil {
		c.cache.Set(stationsCacheKey, stations, cache.DefaultExpiration)
	}
	c.logger.Info("The station list has been refreshed.", zap.Int("rows", len(stations)), zap.Duration("ttl", c.ttl))
	return nil
}

// Caching 是否启用了缓存
func (c *CachedClient) Caching() bool {
	return c.cache != nil
}

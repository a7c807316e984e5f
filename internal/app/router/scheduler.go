package router

import (
	"context"
	"onair/internal/app/onair"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// stationRefresher 可刷新的电台列表缓存
type stationRefresher interface {
	Caching() bool
	RefreshStations(ctx context.Context) error
}

var _ stationRefresher = (*onair.CachedClient)(nil)

// Schedule 按cron表达式定时刷新缓存的电台列表
func Schedule(ctx context.Context, client stationRefresher, spec string) error {
	if spec == "" || !client.Caching() {
		return nil
	}

	// 创建定时任务
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		logger.Info("Start executing the scheduling task.")

		// 更新电台列表数据
		if err := client.RefreshStations(ctx); err != nil {
			logger.Error("Failed to refresh the station list.", zap.Error(err))
		}

		logger.Info("The scheduling task has been completed.")
	})
	if err != nil {
		return err
	}
	c.Start()

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		logger.Info("The scheduling task has been stopped.")
	}()
	return nil
}

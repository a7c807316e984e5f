package router

import (
	"context"
	"onair/internal/app/config"
	"onair/internal/app/onair"
	"onair/internal/app/page"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	headerListTarget  = "X-List-Target"  // 需要替换内容的列表容器
	headerListRefresh = "X-List-Refresh" // 需要重新渲染样式的列表容器
)

var logger = zap.NewNop()

func NewEngine(ctx context.Context, conf *config.Config) (*gin.Engine, error) {
	// L()：获取全局logger
	logger = zap.L()

	gin.SetMode(gin.ReleaseMode)

	// 创建页面及客户端
	p, client, err := page.NewFromConfig(conf)
	if err != nil {
		return nil, err
	}

	// 执行初始化操作
	initData(ctx, client)

	// 执行定时任务
	if err = Schedule(ctx, client, conf.Cache.RefreshCron); err != nil {
		return nil, err
	}

	return newRouter(p, conf.CORS.AllowOrigins), nil
}

// newRouter 创建 Gin 路由引擎
func newRouter(p *page.Page, allowOrigins []string) *gin.Engine {
	r := gin.New()

	// 日志记录
	r.Use(ginzap.Ginzap(logger, time.RFC3339, false))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	// 跨域访问
	if len(allowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  allowOrigins,
			AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Accept", "Content-Type"},
			ExposeHeaders: []string{headerListTarget, headerListRefresh},
			MaxAge:        12 * time.Hour,
		}))
	}

	pc := &pageController{page: p}

	// 移动端页面
	r.GET("/", pc.GetIndex)
	// 页面生命周期事件，返回列表内容
	r.GET("/views/:event", pc.GetView)

	// 查询电台列表-json格式
	r.GET("/stations/json", pc.GetStationsJSON)
	// 查询节目单-json格式
	r.GET("/programs/json", pc.GetProgramsJSON)

	return r
}

// initData 初始化数据
func initData(ctx context.Context, client *onair.CachedClient) {
	if !client.Caching() {
		return
	}

	// 预先加载电台列表，失败时页面仍可在触发时重新请求
	if err := client.RefreshStations(ctx); err != nil {
		logger.Error("Failed to load the station list.", zap.Error(err))
	}
}

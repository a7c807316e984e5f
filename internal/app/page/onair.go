package page

import (
	"context"
	"net/http"
	"onair/internal/app/config"
	"onair/internal/app/onair"
	"onair/internal/app/render"
	"time"

	"go.uber.org/zap"
)

const (
	StationsListID = "stations-list" // 全部电台页的列表容器
	ProgramsListID = "programs-list" // 电台详情页的列表容器
)

// Source 电台和节目单的数据来源
type Source interface {
	GetStations(ctx context.Context) ([]onair.Station, error)
	GetPrograms(ctx context.Context, stationID string, window onair.Window) ([]onair.Program, error)
}

// Options 创建页面事件时的可选参数
type Options struct {
	Now       func() time.Time // 当前时间，为空时使用time.Now
	Location  *time.Location   // 计算零点使用的时区，为空时使用本地时区
	LookAhead time.Duration    // 节目单窗口额外向后查询的时长
}

// Window 按当前时间计算节目单的查询窗口
func (o Options) Window() onair.Window {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	return onair.NewWindow(now().In(loc), o.LookAhead)
}

// Page 移动端页面的事件处理及其数据来源
type Page struct {
	Hooks   *Hooks
	Source  Source
	Options Options
}

// NewPage 创建页面并注册电台详情页和全部电台页的事件处理
func NewPage(src Source, renderer *render.Renderer, opts Options) *Page {
	logger := zap.L()

	stationFlow := &Flow[onair.Program]{
		Name:   "programs",
		ListID: ProgramsListID,
		Fetch: func(ctx context.Context, vc ViewContext) ([]onair.Program, error) {
			if vc.ElementID == "" {
				return nil, ErrMissingStation
			}
			return src.GetPrograms(ctx, vc.ElementID, opts.Window())
		},
		Render:  renderer.Programs,
		Failure: renderer.Failure,
		logger:  logger,
	}

	allStationsFlow := &Flow[onair.Station]{
		Name:   "stations",
		ListID: StationsListID,
		Fetch: func(ctx context.Context, _ ViewContext) ([]onair.Station, error) {
			return src.GetStations(ctx)
		},
		Render:  renderer.Stations,
		Failure: renderer.Failure,
		logger:  logger,
	}

	hooks := NewHooks()
	hooks.Register(EventStation, stationFlow.Handle)
	hooks.Register(EventAllStations, allStationsFlow.Handle)

	return &Page{
		Hooks:   hooks,
		Source:  src,
		Options: opts,
	}
}

// NewFromConfig 根据配置创建客户端、渲染器和页面
func NewFromConfig(conf *config.Config) (*Page, *onair.CachedClient, error) {
	// 校验配置文件
	if err := conf.Validate(); err != nil {
		return nil, nil, err
	}

	// 创建客户端
	client, err := onair.NewClient(&http.Client{
		Timeout: conf.Timeout,
	}, conf.API)
	if err != nil {
		return nil, nil, err
	}
	cachedClient := onair.NewCachedClient(client, conf.Cache.StationsTTL)

	loc, err := conf.API.Location()
	if err != nil {
		return nil, nil, err
	}

	// 创建渲染器
	renderer, err := render.New(render.Globals{
		ProgramIconBaseURL: conf.Images.ProgramIconBaseURL,
		StationLogoBaseURL: conf.Images.StationLogoBaseURL,
		StationLogoPrefix:  conf.Images.StationLogoPrefix,
	}, loc)
	if err != nil {
		return nil, nil, err
	}

	p := NewPage(cachedClient, renderer, Options{
		Location:  loc,
		LookAhead: conf.API.WindowLookAhead(),
	})
	return p, cachedClient, nil
}

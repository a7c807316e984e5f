package page

import (
	"context"
	"html/template"

	"go.uber.org/zap"
)

// Flow 一次"触发 -> 请求 -> 渲染 -> 刷新"的处理流程
type Flow[T any] struct {
	Name   string // 流程名称，用于日志和失败提示
	ListID string // 列表容器的ID

	Fetch   func(ctx context.Context, vc ViewContext) ([]T, error)
	Render  func(items []T) (template.HTML, error)
	Failure func(what string, cause error) template.HTML

	logger *zap.Logger
}

// Handle 执行流程，可直接注册为事件处理函数
func (f *Flow[T]) Handle(ctx context.Context, vc ViewContext, view View) error {
	logger := f.logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Info("Doing request.", zap.String("flow", f.Name), zap.String("id", vc.ElementID))

	items, err := f.Fetch(ctx, vc)
	// 被取消时不更新页面
	if cause := context.Cause(ctx); cause != nil {
		return cause
	}
	if err != nil {
		logger.Error("Failed to load data.", zap.String("flow", f.Name), zap.String("id", vc.ElementID), zap.Error(err))
		f.show(view, f.Failure(f.Name, err))
		return err
	}

	html, err := f.Render(items)
	if err != nil {
		logger.Error("Failed to render data.", zap.String("flow", f.Name), zap.Error(err))
		f.show(view, f.Failure(f.Name, err))
		return err
	}

	logger.Info("Success.", zap.String("flow", f.Name), zap.Int("rows", len(items)))
	f.show(view, html)
	return nil
}

// show 替换列表内容并通知刷新
func (f *Flow[T]) show(view View, html template.HTML) {
	view.Replace(f.ListID, html)
	view.Refresh(f.ListID)
}

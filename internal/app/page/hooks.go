package page

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
)

var (
	ErrUnknownEvent   = errors.New("unknown page event")
	ErrSuperseded     = errors.New("superseded by a newer activation")
	ErrMissingStation = errors.New("station id is empty")
)

// Event 页面生命周期事件
type Event string

const (
	EventStation     Event = "station"      // 电台详情页初始化
	EventAllStations Event = "all_stations" // 全部电台页初始化
)

// ViewContext 触发事件的页面上下文
type ViewContext struct {
	Session   string // 触发事件的会话，用于区分不同的客户端，为空表示未知
	ElementID string // 元素自身的ID，电台详情页中为电台ID
}

// View 外部UI层
type View interface {
	// Replace 替换列表容器的内容
	Replace(listID string, html template.HTML)
	// Refresh 通知列表组件重新渲染样式
	Refresh(listID string)
}

// Handler 事件处理函数
type Handler func(ctx context.Context, vc ViewContext, view View) error

// Hooks 页面事件与处理函数的映射
type Hooks struct {
	handlers map[Event]Handler
	inflight *xsync.MapOf[string, *activation]

	logger *zap.Logger
}

// activation 一次正在进行中的事件处理
type activation struct {
	cancel context.CancelCauseFunc
}

func NewHooks() *Hooks {
	return &Hooks{
		handlers: make(map[Event]Handler),
		inflight: xsync.NewMapOf[string, *activation](),
		logger:   zap.L(),
	}
}

// Register 注册事件处理函数，重复注册时覆盖之前的函数
func (h *Hooks) Register(event Event, handler Handler) {
	h.handlers[event] = handler
}

// Events 已注册的事件
func (h *Hooks) Events() []Event {
	events := make([]Event, 0, len(h.handlers))
	for event := range h.handlers {
		events = append(events, event)
	}
	return events
}

// Trigger 触发事件。同一会话重复触发同一事件时，取消之前尚未完成的处理。
// 会话为空时每次触发相互独立。
func (h *Hooks) Trigger(ctx context.Context, event Event, vc ViewContext, view View) error {
	handler, ok := h.handlers[event]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, event)
	}

	// 没有会话时无法区分客户端，不取消其它处理
	if vc.Session != "" {
		var done func()
		ctx, done = h.begin(ctx, string(event)+"|"+vc.Session)
		defer done()
	}

	err := handler(ctx, vc, view)
	if cause := context.Cause(ctx); errors.Is(cause, ErrSuperseded) {
		h.logger.Info("The page event has been superseded.", zap.String("event", string(event)), zap.String("session", vc.Session))
		return ErrSuperseded
	}
	return err
}

// begin 登记一次事件处理，并取消同一key下之前的处理
func (h *Hooks) begin(parent context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)
	current := &activation{cancel: cancel}

	if prev, loaded := h.inflight.LoadAndStore(key, current); loaded {
		prev.cancel(ErrSuperseded)
	}

	return ctx, func() {
		// 只删除自己登记的记录
		h.inflight.Compute(key, func(old *activation, loaded bool) (*activation, bool) {
			return old, !loaded || old == current
		})
		cancel(nil)
	}
}

package router

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"onair/internal/app/onair"
	"onair/internal/app/page"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "onair_session"
	sessionCookieAge  = 7 * 24 * 60 * 60
	sessionQueryName  = "session" // 页面实例自行生成的会话
)

//go:embed assets/index.html
var indexHTML []byte

type pageController struct {
	page *page.Page
}

// GetIndex 返回移动端页面，并为客户端分配会话
func (pc *pageController) GetIndex(c *gin.Context) {
	if _, err := c.Cookie(sessionCookieName); err != nil {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookieName, uuid.NewString(), sessionCookieAge, "/", "", false, true)
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// GetView 触发页面生命周期事件，返回替换列表的HTML片段
func (pc *pageController) GetView(c *gin.Context) {
	event := page.Event(c.Param("event"))
	vc := page.ViewContext{
		Session:   sessionOf(c),
		ElementID: c.Query("id"),
	}

	view := &page.Buffer{}
	err := pc.page.Hooks.Trigger(c.Request.Context(), event, vc, view)
	switch {
	case errors.Is(err, page.ErrUnknownEvent):
		logger.Warn("Unknown page event.", zap.String("event", string(event)))
		c.Status(http.StatusNotFound)
		return
	case errors.Is(err, page.ErrSuperseded), errors.Is(err, context.Canceled):
		// 已有更新的请求，本次结果丢弃
		c.Status(http.StatusNoContent)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = statusOf(err)
	}

	if !view.Written() {
		c.Status(status)
		return
	}

	// 通知页面替换列表内容并刷新列表组件
	c.Header(headerListTarget, view.ListID)
	if view.Refreshed(view.ListID) {
		c.Header(headerListRefresh, view.ListID)
	}
	c.Data(status, "text/html; charset=utf-8", []byte(view.HTML))
}

// sessionOf 获取触发事件的会话：优先使用页面实例传入的session参数，其次使用cookie。
// 都没有时返回空字符串，不与其它客户端共用会话。
func sessionOf(c *gin.Context) string {
	if session := c.Query(sessionQueryName); session != "" {
		return session
	}
	if session, err := c.Cookie(sessionCookieName); err == nil {
		return session
	}
	return ""
}

// statusOf 将错误转换为HTTP状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, page.ErrMissingStation):
		return http.StatusBadRequest
	case errors.Is(err, onair.ErrRequestFailed), errors.Is(err, onair.ErrInvalidPayload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

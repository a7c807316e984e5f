package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetStationsJSON 查询电台列表
func (pc *pageController) GetStationsJSON(c *gin.Context) {
	stations, err := pc.page.Source.GetStations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load the station list.", zap.Error(err))
		c.Status(statusOf(err))
		return
	}

	// 返回响应
	c.PureJSON(http.StatusOK, stations)
}

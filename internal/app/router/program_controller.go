package router

import (
	"net/http"
	"onair/internal/app/onair"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StationJsonPrograms 电台的JSON格式节目单
type StationJsonPrograms struct {
	StationID string          `json:"station_id"`
	StartDate int64           `json:"start_date"` // 查询窗口的开始时间，秒级时间戳
	EndDate   int64           `json:"end_date"`   // 查询窗口的结束时间，秒级时间戳
	Programs  []onair.Program `json:"programs"`
}

// GetProgramsJSON 查询指定电台的节目单
func (pc *pageController) GetProgramsJSON(c *gin.Context) {
	// 获取电台ID
	stationID := c.Query("station")

	// 校验电台ID是否为空
	if stationID == "" {
		logger.Warn("The id of the station is null.")
		// 返回响应
		c.Status(http.StatusBadRequest)
		return
	}

	window := pc.page.Options.Window()
	programs, err := pc.page.Source.GetPrograms(c.Request.Context(), stationID, window)
	if err != nil {
		logger.Error("Failed to load the program list.", zap.String("station", stationID), zap.Error(err))
		c.Status(statusOf(err))
		return
	}
	if programs == nil {
		programs = []onair.Program{}
	}

	// 返回最终响应
	c.PureJSON(http.StatusOK, &StationJsonPrograms{
		StationID: stationID,
		StartDate: window.Start.Unix(),
		EndDate:   window.End.Unix(),
		Programs:  programs,
	})
}

package onair

import (
	"strconv"
	"time"
)

const (
	windowLeadIn = 2 * time.Hour  // 窗口从当天零点往前的时长
	windowDay    = 26 * time.Hour // 窗口从当天零点往后的时长（到次日凌晨2点）
)

// Window 节目单的查询时间窗口
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow 根据当前时间计算节目单的查询窗口：
// 开始时间为当天零点前2小时，结束时间为当天零点后26小时再加上lookAhead。
// 零点按now所在的时区计算。
func NewWindow(now time.Time, lookAhead time.Duration) Window {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Window{
		Start: midnight.Add(-windowLeadIn),
		End:   midnight.Add(windowDay + lookAhead),
	}
}

// StartDate 开始时间的秒级时间戳
func (w Window) StartDate() string {
	return strconv.FormatInt(w.Start.Unix(), 10)
}

// EndDate 结束时间的秒级时间戳
func (w Window) EndDate() string {
	return strconv.FormatInt(w.End.Unix(), 10)
}

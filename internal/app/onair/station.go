package onair

import (
	"context"
	"fmt"
)

// Station 电台
type Station struct {
	ID   string `json:"id"`   // 电台ID
	Name string `json:"name"` // 电台名称
	Logo string `json:"logo"` // 台标文件名
}

type stationPayload struct {
	ID flexString `json:"id"`
	H1 flexString `json:"h1"`
	F  flexString `json:"f"`
}

// GetStations 获取全部电台列表
func (c *Client) GetStations(ctx context.Context) ([]Station, error) {
	var payload []stationPayload
	if err := c.getJSON(ctx, "stations", c.config.StationsURL, nil, &payload); err != nil {
		return nil, err
	}

	// 解析电台列表
	stations, err := parseStations(payload)
	if err != nil {
		return nil, fmt.Errorf("stations: %w", err)
	}

	c.logger.Sugar().Debugf("The station list has been loaded, rows: %d.", len(stations))
	return stations, nil
}

// parseStations 校验并转换电台列表，任意一条数据不合法则整体失败
func parseStations(payload []stationPayload) ([]Station, error) {
	stations := make([]Station, 0, len(payload))
	for i, p := range payload {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: station %d: missing id", ErrInvalidPayload, i)
		}
		if p.H1 == "" {
			return nil, fmt.Errorf("%w: station %d (%s): missing name", ErrInvalidPayload, i, p.ID)
		}

		stations = append(stations, Station{
			ID:   string(p.ID),
			Name: string(p.H1),
			Logo: string(p.F),
		})
	}
	return stations, nil
}

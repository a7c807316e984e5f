package onair

import (
	"context"
	"fmt"
	"net/url"
)

// Program 节目
type Program struct {
	ID       string `json:"id"`                 // 节目ID
	Title    string `json:"title"`              // 标题
	Subtitle string `json:"subtitle,omitempty"` // 副标题
	Start    int64  `json:"start"`              // 开始时间，秒级时间戳
	End      int64  `json:"end"`                // 结束时间，秒级时间戳
	Icon     string `json:"icon,omitempty"`     // 缩略图文件名
}

type programPayload struct {
	ID flexString  `json:"id"`
	H1 flexString  `json:"h1"`
	H2 flexString  `json:"h2"`
	S  *flexString `json:"s"`
	E  *flexString `json:"e"`
	F  flexString  `json:"f"`
}

// GetPrograms 获取指定电台在查询窗口内的节目单
func (c *Client) GetPrograms(ctx context.Context, stationID string, window Window) ([]Program, error) {
	if stationID == "" {
		return nil, fmt.Errorf("programs: station id is empty")
	}

	// 组装请求参数
	params := url.Values{}
	params.Set("startDate", window.StartDate())
	params.Set("endDate", window.EndDate())
	params.Set("stations", stationID)

	var payload []programPayload
	if err := c.getJSON(ctx, "programs", c.config.ProgramsURL, params, &payload); err != nil {
		return nil, err
	}

	// 解析节目单
	programs, err := parsePrograms(payload)
	if err != nil {
		return nil, fmt.Errorf("programs: %w", err)
	}

	c.logger.Sugar().Debugf("The program list of station %s has been loaded, rows: %d.", stationID, len(programs))
	return programs, nil
}

// parsePrograms 校验并转换节目单，任意一条数据不合法则整体失败
func parsePrograms(payload []programPayload) ([]Program, error) {
	programs := make([]Program, 0, len(payload))
	for i, p := range payload {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: program %d: missing id", ErrInvalidPayload, i)
		}
		if p.H1 == "" {
			return nil, fmt.Errorf("%w: program %d (%s): missing title", ErrInvalidPayload, i, p.ID)
		}
		if p.S == nil || p.E == nil {
			return nil, fmt.Errorf("%w: program %d (%s): missing start or end", ErrInvalidPayload, i, p.ID)
		}

		start, err := p.S.epochSeconds()
		if err != nil {
			return nil, fmt.Errorf("%w: program %d (%s): %v", ErrInvalidPayload, i, p.ID, err)
		}
		end, err := p.E.epochSeconds()
		if err != nil {
			return nil, fmt.Errorf("%w: program %d (%s): %v", ErrInvalidPayload, i, p.ID, err)
		}
		if end < start {
			return nil, fmt.Errorf("%w: program %d (%s): ends before it starts", ErrInvalidPayload, i, p.ID)
		}

		programs = append(programs, Program{
			ID:       string(p.ID),
			Title:    string(p.H1),
			Subtitle: string(p.H2),
			Start:    start,
			End:      end,
			Icon:     string(p.F),
		})
	}
	return programs, nil
}

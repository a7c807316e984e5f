package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"onair/internal/app/onair"
	"onair/internal/app/page"
	"onair/internal/app/render"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	stations []onair.Station
	programs []onair.Program
	err      error
	delay    time.Duration // 模拟较慢的远程接口
}

func (s *fakeSource) GetStations(ctx context.Context) ([]onair.Station, error) {
	return s.stations, s.err
}

func (s *fakeSource) GetPrograms(ctx context.Context, stationID string, window onair.Window) ([]onair.Program, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
	}
	return s.programs, s.err
}

func newTestRouter(t *testing.T, src page.Source, allowOrigins ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := render.New(render.Globals{
		ProgramIconBaseURL: "http://icons.test/programs",
		StationLogoBaseURL: "http://icons.test/logos",
		StationLogoPrefix:  "bunt_",
	}, time.UTC)
	require.NoError(t, err)

	p := page.NewPage(src, renderer, page.Options{
		Now:       func() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) },
		Location:  time.UTC,
		LookAhead: onair.DefaultLookAhead,
	})
	return newRouter(p, allowOrigins)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetIndexIssuesSession(t *testing.T) {
	r := newTestRouter(t, &fakeSource{})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="stations-list"`)
	assert.Contains(t, w.Body.String(), `id="programs-list"`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)

	// 已有会话时不重新分配
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "existing"})
	w = serve(r, req)
	assert.Empty(t, w.Result().Cookies())
}

func TestGetViewAllStations(t *testing.T) {
	r := newTestRouter(t, &fakeSource{stations: []onair.Station{
		{ID: "ard", Name: "Das Erste", Logo: "ard.png"},
		{ID: "zdf", Name: "ZDF", Logo: "zdf.png"},
	}})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/views/all_stations", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, page.StationsListID, w.Header().Get(headerListTarget))
	assert.Equal(t, page.StationsListID, w.Header().Get(headerListRefresh))
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `data-url="ard"`)
	assert.Contains(t, w.Body.String(), `data-url="zdf"`)
}

func TestGetViewStation(t *testing.T) {
	r := newTestRouter(t, &fakeSource{programs: []onair.Program{
		{ID: "42", Title: "Tagesschau", Start: 0, End: 3600},
	}})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/views/station?id=ard", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, page.ProgramsListID, w.Header().Get(headerListTarget))
	assert.Equal(t, page.ProgramsListID, w.Header().Get(headerListRefresh))
	assert.Contains(t, w.Body.String(), `href="detail.html?42"`)
	assert.Contains(t, w.Body.String(), "0:0&nbsp;-&nbsp;1:0")
}

func TestGetViewSameAddressWithoutSession(t *testing.T) {
	r := newTestRouter(t, &fakeSource{
		programs: []onair.Program{{ID: "42", Title: "Tagesschau", Start: 0, End: 3600}},
		delay:    200 * time.Millisecond,
	})

	// 同一出口IP下的两个客户端，均未携带会话
	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i, station := range []string{"ard", "zdf"} {
		wg.Add(1)
		go func(i int, station string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/views/station?id="+station, nil)
			req.RemoteAddr = "203.0.113.7:4711"
			codes[i] = serve(r, req).Code
		}(i, station)
	}
	wg.Wait()

	assert.Equal(t, []int{http.StatusOK, http.StatusOK}, codes)
}

func TestGetViewSameSessionSupersedes(t *testing.T) {
	r := newTestRouter(t, &fakeSource{
		programs: []onair.Program{{ID: "42", Title: "Tagesschau", Start: 0, End: 3600}},
		delay:    200 * time.Millisecond,
	})

	first := make(chan int, 1)
	go func() {
		first <- serve(r, httptest.NewRequest(http.MethodGet, "/views/station?id=ard&session=tab-1", nil)).Code
	}()
	time.Sleep(50 * time.Millisecond)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/views/station?id=zdf&session=tab-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNoContent, <-first)
}

func TestSessionOf(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		target string
		cookie string
		want   string
	}{
		{name: "page session", target: "/views/station?session=tab-1", cookie: "browser", want: "tab-1"},
		{name: "cookie", target: "/views/station", cookie: "browser", want: "browser"},
		{name: "none", target: "/views/station", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.target, nil)
			c.Request.RemoteAddr = "203.0.113.7:4711"
			if tt.cookie != "" {
				c.Request.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			assert.Equal(t, tt.want, sessionOf(c))
		})
	}
}

func TestGetViewErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    *fakeSource
		target string
		code   int
		body   string
	}{
		{
			name:   "unknown event",
			src:    &fakeSource{},
			target: "/views/detail",
			code:   http.StatusNotFound,
		},
		{
			name:   "missing station",
			src:    &fakeSource{},
			target: "/views/station",
			code:   http.StatusBadRequest,
			body:   "onair-error",
		},
		{
			name:   "upstream unavailable",
			src:    &fakeSource{err: &onair.RequestError{Op: "stations", StatusCode: http.StatusServiceUnavailable, Transient: true}},
			target: "/views/all_stations",
			code:   http.StatusBadGateway,
			body:   `data-transient="true"`,
		},
		{
			name:   "invalid payload",
			src:    &fakeSource{err: onair.ErrInvalidPayload},
			target: "/views/station?id=ard",
			code:   http.StatusBadGateway,
			body:   `data-transient="false"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, tt.src)

			w := serve(r, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.Contains(t, w.Body.String(), tt.body)
				assert.NotEmpty(t, w.Header().Get(headerListTarget))
			}
		})
	}
}

func TestGetStationsJSON(t *testing.T) {
	r := newTestRouter(t, &fakeSource{stations: []onair.Station{
		{ID: "ard", Name: "Das Erste", Logo: "ard.png"},
	}})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/stations/json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stations []onair.Station
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stations))
	assert.Equal(t, []onair.Station{{ID: "ard", Name: "Das Erste", Logo: "ard.png"}}, stations)

	r = newTestRouter(t, &fakeSource{err: &onair.RequestError{Op: "stations", StatusCode: http.StatusNotFound}})
	w = serve(r, httptest.NewRequest(http.MethodGet, "/stations/json", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetProgramsJSON(t *testing.T) {
	r := newTestRouter(t, &fakeSource{programs: []onair.Program{
		{ID: "42", Title: "Tagesschau", Start: 0, End: 3600},
	}})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/programs/json", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/programs/json?station=ard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp StationJsonPrograms
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ard", resp.StationID)
	assert.Equal(t, int64(1704837600), resp.StartDate)
	assert.Equal(t, int64(1705629600), resp.EndDate)
	require.Len(t, resp.Programs, 1)
	assert.Equal(t, "Tagesschau", resp.Programs[0].Title)
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t, &fakeSource{}, "http://m.example.org")

	req := httptest.NewRequest(http.MethodGet, "/views/all_stations", nil)
	req.Header.Set("Origin", "http://m.example.org")
	w := serve(r, req)
	assert.Equal(t, "http://m.example.org", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), headerListTarget)
}

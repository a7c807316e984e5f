package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"onair/internal/app/onair"
	"strings"
	"time"
)

// transparentGIF 缩略图为空时使用的1x1透明图片
const transparentGIF = "data:image/gif;base64,R0lGODlhAQABAAAAACH5BAEKAAEALAAAAAABAAEAAAICTAEAOw=="

//go:embed templates/*.tmpl
var templateFS embed.FS

// Globals 与单条数据无关的全局变量
type Globals struct {
	ProgramIconBaseURL string // 节目缩略图的Base URL
	StationLogoBaseURL string // 台标的Base URL
	StationLogoPrefix  string // 台标文件名前缀，例如：bunt_
}

// view 模板的渲染数据
type view[T any] struct {
	Globals Globals
	Items   []T
}

type failureView struct {
	What      string
	Transient bool
}

type Renderer struct {
	tmpl    *template.Template
	globals Globals
	loc     *time.Location // 展示时间使用的时区
}

func New(globals Globals, loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.Local
	}
	globals.ProgramIconBaseURL = strings.TrimSuffix(globals.ProgramIconBaseURL, "/")
	globals.StationLogoBaseURL = strings.TrimSuffix(globals.StationLogoBaseURL, "/")

	r := Renderer{
		globals: globals,
		loc:     loc,
	}

	tmpl, err := template.New("onair").Funcs(r.pipes()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl
	return &r, nil
}

// Programs 将节目单渲染为列表项
func (r *Renderer) Programs(programs []onair.Program) (template.HTML, error) {
	return r.execute("programs.tmpl", view[onair.Program]{Globals: r.globals, Items: programs})
}

// Stations 将电台列表渲染为列表项
func (r *Renderer) Stations(stations []onair.Station) (template.HTML, error) {
	return r.execute("stations.tmpl", view[onair.Station]{Globals: r.globals, Items: stations})
}

// Failure 渲染加载失败的提示
func (r *Renderer) Failure(what string, cause error) template.HTML {
	out, err := r.execute("failure.tmpl", failureView{
		What:      what,
		Transient: onair.IsTransient(cause),
	})
	if err != nil {
		return template.HTML(`<li class="onair-error">Unable to load.</li>`)
	}
	return out
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

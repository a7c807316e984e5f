package render

import (
	"html/template"
	"strconv"
	"time"
)

// pipes 模板中可用的转换函数
func (r *Renderer) pipes() template.FuncMap {
	return template.FuncMap{
		"time":        r.clock,
		"notEmpty":    notEmpty,
		"placeholder": placeholder,
	}
}

// clock 将秒级时间戳转换为"时:分"，不补零，例如：9:5
func (r *Renderer) clock(epoch int64) string {
	t := time.Unix(epoch, 0).In(r.loc)
	return strconv.Itoa(t.Hour()) + ":" + strconv.Itoa(t.Minute())
}

func notEmpty(s string) bool {
	return s != ""
}

// placeholder 缩略图为空时的图片地址
func placeholder() template.URL {
	return template.URL(transparentGIF)
}

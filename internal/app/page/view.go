package page

import (
	"html/template"
	"slices"
)

// Buffer 记录页面更新内容的View，由调用方决定如何输出
type Buffer struct {
	ListID    string        // 被替换的列表容器
	HTML      template.HTML // 替换后的内容
	refreshed []string
}

var _ View = (*Buffer)(nil)

func (b *Buffer) Replace(listID string, html template.HTML) {
	b.ListID = listID
	b.HTML = html
}

func (b *Buffer) Refresh(listID string) {
	if !slices.Contains(b.refreshed, listID) {
		b.refreshed = append(b.refreshed, listID)
	}
}

// Refreshed 是否已通知指定列表刷新
func (b *Buffer) Refreshed(listID string) bool {
	return slices.Contains(b.refreshed, listID)
}

// Written 是否有内容写入
func (b *Buffer) Written() bool {
	return b.ListID != ""
}

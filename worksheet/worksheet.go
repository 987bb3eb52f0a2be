// Package worksheet 生成紧凑的单页重默纸：A4 竖版切成无间距的
// Cols x Rows 格，每格内容完全相同——一行加粗且保证单行放得下的
// 标题（"{date}重默 {scope} Name____ Class___"），下接编号词条。
package worksheet

import (
	"errors"
	"fmt"

	"github.com/xugehan/english-related-generator/dsl"
	"github.com/xugehan/english-related-generator/layout"
)

var (
	ErrNoItems = errors.New("worksheet: 词条列表为空")
	ErrBadGrid = errors.New("worksheet: 行列数必须为正")
)

// Options 汇集一张重默纸的全部参数，零值字段回落到 DefaultOptions。
type Options struct {
	Date     string // 如 "1111"，拼进每格标题
	Scope    string // 默写范围描述
	Cols     int
	Rows     int
	FontSize float64 // pt
	Leading  float64 // 行距（pt），0 时取 FontSize + 2.5
	Padding  float64 // 格内边距（pt）
	Margin   float64 // 页外边距（pt）
}

// DefaultOptions 返回与打印件一致的默认参数：2x3 格、11pt、
// 3mm 内边距、8mm 外边距。
func DefaultOptions() Options {
	return Options{
		Cols:     2,
		Rows:     3,
		FontSize: 11,
		Leading:  13.5,
		Padding:  3 * layout.MmToPt,
		Margin:   8 * layout.MmToPt,
	}
}

// Document 是一次生成的产物，与 slips.Document 同一契约。
type Document struct {
	Layout   *layout.Result
	Pages    int
	Warnings []string
}

// Generate 排出一张重默纸。重默纸恒为单页：所有格子内容相同，
// 没有跨页一说。
func Generate(items []string, m layout.Measurer, opts Options) (*Document, error) {
	opts = withDefaults(opts)
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if opts.Cols <= 0 || opts.Rows <= 0 {
		return nil, fmt.Errorf("%w: cols=%d rows=%d", ErrBadGrid, opts.Cols, opts.Rows)
	}

	pageW, pageH := layout.PageSize(false)
	grid := layout.GridSpec{
		PageWidth:  pageW,
		PageHeight: pageH,
		Margin:     opts.Margin,
		Cols:       opts.Cols,
		Rows:       opts.Rows,
		// Gutter 与 CellHeight 均为零：无间距平铺
	}

	prefix := opts.Date + "重默 " + opts.Scope
	innerW := grid.CellWidth() - 2*opts.Padding
	header, overflow := layout.FitHeader(layout.DefaultHeaderTemplate(prefix), m, innerW, opts.FontSize)

	doc := &Document{
		Layout: &layout.Result{
			Meta: layout.DocumentMeta{
				Title:   prefix,
				Subject: "重默纸",
				Creator: "english-related-generator",
			},
		},
		Pages: 1,
	}
	if overflow {
		doc.Warnings = append(doc.Warnings,
			fmt.Sprintf("标题 %q 缩到最短仍超出格宽，按原样打印", header))
	}

	page := layout.NewPage(pageW, pageH)
	style := layout.SheetStyle{
		FontSize: opts.FontSize,
		Leading:  opts.Leading,
		Padding:  opts.Padding,
	}
	for row := 0; row < opts.Rows; row++ {
		for col := 0; col < opts.Cols; col++ {
			layout.ComposeSheetCell(&page, m, grid.CellBox(row, col), header, items, style)
		}
	}
	doc.Layout.Pages = append(doc.Layout.Pages, page)
	return doc, nil
}

// OptionsFromSheet 把 DSL 解析结果转成 Options，未写的键保持零值
// 由 Generate 补默认。
func OptionsFromSheet(s *dsl.Sheet) Options {
	opts := Options{
		Date:  s.StringSetting("date"),
		Scope: s.StringSetting("scope"),
	}
	if cols, rows, ok := s.GridSetting(); ok {
		opts.Cols, opts.Rows = cols, rows
	}
	if l := s.LengthSetting("font-size"); !l.IsZero() {
		opts.FontSize = l.ToPT()
	}
	if l := s.LengthSetting("leading"); !l.IsZero() {
		opts.Leading = l.ToPT()
	}
	if l := s.LengthSetting("padding"); !l.IsZero() {
		opts.Padding = l.ToPT()
	}
	if l := s.LengthSetting("margin"); !l.IsZero() {
		opts.Margin = l.ToPT()
	}
	return opts
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Cols == 0 {
		opts.Cols = def.Cols
	}
	if opts.Rows == 0 {
		opts.Rows = def.Rows
	}
	if opts.FontSize == 0 {
		opts.FontSize = def.FontSize
	}
	if opts.Leading == 0 {
		opts.Leading = opts.FontSize + 2.5
	}
	if opts.Padding == 0 {
		opts.Padding = def.Padding
	}
	if opts.Margin == 0 {
		opts.Margin = def.Margin
	}
	return opts
}

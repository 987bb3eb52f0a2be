// Package slips 从成绩表生成学生小分条：每页排出 Cols x Rows 张
// 圆角卡片，标题为 “姓名 学号”，右侧为班级，正文是其余列的
// “键: 值” 条目。
package slips

import (
	"errors"
	"fmt"

	"github.com/xugehan/english-related-generator/layout"
	"github.com/xugehan/english-related-generator/record"
)

var (
	ErrNoRecords = errors.New("slips: 没有可排版的记录")
	ErrNoFields  = errors.New("slips: 没有可展示的明细列")
	ErrBadGrid   = errors.New("slips: 行列数必须为正")
)

// Options 汇集一次生成的全部参数，零值字段回落到 DefaultOptions。
type Options struct {
	Title      string // 页眉标题
	Landscape  bool
	Cols       int
	Rows       int
	CardHeight float64 // pt，定高模式；行数放不下时向下收缩
	Margin     float64
	Gutter     float64

	TitleFontSize     float64 // 页眉字号
	CardTitleFontSize float64
	BodyFontSize      float64
	CornerRadius      float64

	// Fields 限定正文展示的列名（按给定顺序）；为空时展示身份列
	// 之外的全部列，保持表格原序。
	Fields []string
}

// DefaultOptions 返回与打印件一致的默认参数。
func DefaultOptions() Options {
	return Options{
		Title:             "学生成绩小分条",
		Cols:              2,
		Rows:              6,
		CardHeight:        110,
		Margin:            36,
		Gutter:            16,
		TitleFontSize:     12,
		CardTitleFontSize: 10,
		BodyFontSize:      8,
		CornerRadius:      10,
	}
}

// Document 是一次生成的产物：布局结果、页数与降级警告。
// 警告（行数收缩、溢出丢弃等）绝不升级为错误。
type Document struct {
	Layout   *layout.Result
	Pages    int
	Warnings []string
}

// Generate 排出全部记录。
// 配置性问题（空记录、无明细列、非法行列数）立即失败；
// 退化问题记为 Warnings 随文档返回。
func Generate(records []record.Record, m layout.Measurer, opts Options) (*Document, error) {
	return generate(records, m, opts, false)
}

// Preview 只排第一页，记录流截断到每页容量，绝不翻页。
func Preview(records []record.Record, m layout.Measurer, opts Options) (*Document, error) {
	return generate(records, m, opts, true)
}

func generate(records []record.Record, m layout.Measurer, opts Options, preview bool) (*Document, error) {
	opts = withDefaults(opts)
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if opts.Cols <= 0 || opts.Rows <= 0 {
		return nil, fmt.Errorf("%w: cols=%d rows=%d", ErrBadGrid, opts.Cols, opts.Rows)
	}

	columns := records[0].Columns
	roles := record.ResolveRoles(columns)
	fields, err := selectFields(columns, roles, opts.Fields)
	if err != nil {
		return nil, err
	}

	pageW, pageH := layout.PageSize(opts.Landscape)
	grid := layout.GridSpec{
		PageWidth:  pageW,
		PageHeight: pageH,
		Margin:     opts.Margin,
		Gutter:     opts.Gutter,
		Cols:       opts.Cols,
		Rows:       opts.Rows,
		CellHeight: opts.CardHeight,
	}

	doc := &Document{Layout: &layout.Result{
		Meta: layout.DocumentMeta{
			Title:   opts.Title,
			Subject: "学生成绩小分条",
			Creator: "english-related-generator",
		},
	}}
	if rows, clamped := grid.EffectiveRows(); clamped {
		doc.Warnings = append(doc.Warnings,
			fmt.Sprintf("卡片高度 %.0fpt 放不下 %d 行，已收缩为每页 %d 行", opts.CardHeight, opts.Rows, rows))
	}

	style := layout.CardStyle{
		TitleSize:    opts.CardTitleFontSize,
		AsideSize:    opts.BodyFontSize,
		BodySize:     opts.BodyFontSize,
		CornerRadius: opts.CornerRadius,
	}

	// 首页与后续每页都先画页眉，页号由翻页回调逐层传入。
	addPage := func(page int) *layout.Page {
		doc.Layout.Pages = append(doc.Layout.Pages, layout.NewPage(pageW, pageH))
		p := &doc.Layout.Pages[len(doc.Layout.Pages)-1]
		p.Texts = append(p.Texts, layout.TextBox{
			Content: fmt.Sprintf("%s  —  Page %d", opts.Title, page),
			X:       opts.Margin,
			Y:       pageH - opts.Margin + 10,
			Size:    opts.TitleFontSize,
			Color:   layout.Color{R: 38, G: 38, B: 38},
		})
		return p
	}
	current := addPage(1)

	packer := layout.Packer{Grid: grid, Preview: preview}
	pages, err := packer.Run(len(records),
		func(index, row, col int) error {
			rec := records[index]
			title := roles.Value(record.RoleName, columns, rec) + " " + roles.Value(record.RoleCode, columns, rec)
			aside := roles.Value(record.RoleClass, columns, rec)
			items := make([]layout.KV, 0, len(fields))
			for _, f := range fields {
				items = append(items, layout.KV{Key: f, Value: rec.Display(f)})
			}
			layout.ComposeCard(current, m, grid.CellBox(row, col), title, aside, items, style)
			return nil
		},
		func(page int) error {
			current = addPage(page)
			return nil
		})
	if err != nil {
		return nil, err
	}
	doc.Pages = pages
	return doc, nil
}

// selectFields 求正文列：显式指定时按给定顺序取存在的列，
// 否则取身份列之外的全部列。
func selectFields(columns []string, roles record.Assignments, requested []string) ([]string, error) {
	if len(requested) > 0 {
		existing := map[string]bool{}
		for _, c := range columns {
			existing[c] = true
		}
		var out []string
		for _, f := range requested {
			if existing[f] {
				out = append(out, f)
			}
		}
		if len(out) == 0 {
			return nil, ErrNoFields
		}
		return out, nil
	}
	var out []string
	for _, idx := range record.DetailColumns(columns, roles) {
		out = append(out, columns[idx])
	}
	if len(out) == 0 {
		return nil, ErrNoFields
	}
	return out, nil
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.Cols == 0 {
		opts.Cols = def.Cols
	}
	if opts.Rows == 0 {
		opts.Rows = def.Rows
	}
	if opts.CardHeight == 0 {
		opts.CardHeight = def.CardHeight
	}
	if opts.Margin == 0 {
		opts.Margin = def.Margin
	}
	if opts.Gutter == 0 {
		opts.Gutter = def.Gutter
	}
	if opts.TitleFontSize == 0 {
		opts.TitleFontSize = def.TitleFontSize
	}
	if opts.CardTitleFontSize == 0 {
		opts.CardTitleFontSize = def.CardTitleFontSize
	}
	if opts.BodyFontSize == 0 {
		opts.BodyFontSize = def.BodyFontSize
	}
	if opts.CornerRadius == 0 {
		opts.CornerRadius = def.CornerRadius
	}
	return opts
}

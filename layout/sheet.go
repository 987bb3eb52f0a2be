package layout

import "strconv"

// SheetStyle 汇集默写格的字号与内边距。
type SheetStyle struct {
	FontSize float64
	Leading  float64
	Padding  float64
}

// ComposeSheetCell 在 box 内排出一个默写格：顶部一行加粗标题
//（调用方已用 FitHeader 缩排到位），其下是带编号的条目列表。
// 条目按可用宽度逐字贪心折行，超出格子底边的行直接截掉，
// 绝不画到格子外面。
func ComposeSheetCell(p *Page, m Measurer, box CellBox, header string, items []string, st SheetStyle) {
	p.Rects = append(p.Rects, Rect{
		X:           box.X,
		Y:           box.Y,
		Width:       box.Width,
		Height:      box.Height,
		StrokeColor: Color{R: 0, G: 0, B: 0},
		StrokeWidth: 0.75,
	})

	innerW := box.Width - 2*st.Padding
	bottom := box.Y + st.Padding
	// 基线从格子顶部往下推进；每行占 Leading 高。
	y := box.Top() - st.Padding - st.FontSize

	if y < bottom {
		return
	}
	p.Texts = append(p.Texts, TextBox{
		Content: header,
		X:       box.X + st.Padding,
		Y:       y,
		Size:    st.FontSize,
		Bold:    true,
		Color:   Color{R: 0, G: 0, B: 0},
	})
	y -= st.Leading + 2

	style := TextStyle{Size: st.FontSize}
	for i, item := range items {
		line := strconv.Itoa(i+1) + ". " + item
		for _, wrapped := range WrapText(m, line, style, innerW) {
			if y < bottom {
				return
			}
			p.Texts = append(p.Texts, TextBox{
				Content: wrapped,
				X:       box.X + st.Padding,
				Y:       y,
				Size:    st.FontSize,
				Color:   Color{R: 0, G: 0, B: 0},
			})
			y -= st.Leading
		}
	}
}

package layout

import "math"

// 卡片配色沿用打印件的既定方案。
var (
	cardBorderColor  = Color{R: 64, G: 89, B: 140}
	cardFillColor    = Color{R: 247, G: 250, B: 255}
	cardTitleColor   = Color{R: 31, G: 46, B: 89}
	cardDividerColor = Color{R: 191, G: 204, B: 242}
	cardBodyColor    = Color{R: 26, G: 26, B: 26}
)

const (
	cardInnerMargin = 10.0
	cardColumnGap   = 8.0
	// 标题区（标题行 + 分隔线 + 空白）对正文可用高度的占用估计。
	cardTitleZone = 36.0
)

// KV 是卡片正文里的一项 “键: 值”。
type KV struct {
	Key   string
	Value string
}

// CardStyle 汇集一张卡片的可调字号与圆角。
type CardStyle struct {
	TitleSize    float64
	AsideSize    float64
	BodySize     float64
	CornerRadius float64
}

// CardColumnCapacity 返回每列最多容纳的条目数：
// floor((格高 - 标题区) / 行高)，下限 1。行高 = 正文字号 + 4。
func CardColumnCapacity(cellHeight, bodySize float64) int {
	lineHeight := bodySize + 4
	n := int(math.Floor((cellHeight - cardTitleZone) / lineHeight))
	if n < 1 {
		n = 1
	}
	return n
}

// SplitColumns 把条目按原始顺序切进三列：先填满第一列，再第二列，
// 第三列拿到剩余的全部（超出部分由 ComposeCard 静默丢弃）。
func SplitColumns(items []KV, perColumn int) (left, middle, right []KV) {
	if perColumn < 1 {
		perColumn = 1
	}
	if len(items) > 0 {
		left = items[:min(perColumn, len(items))]
	}
	if len(items) > perColumn {
		middle = items[perColumn:min(2*perColumn, len(items))]
	}
	if len(items) > 2*perColumn {
		right = items[2*perColumn:]
	}
	return left, middle, right
}

// ComposeCard 在 box 内排出一张卡片：圆角底、左对齐标题、右对齐的
// 卡片标签、标题下的分隔线，以及至多三列 “键: 值” 正文。
// 所有元素都在 box 内缩进 cardInnerMargin 排布，绝不越界；
// 三列都放不下的条目直接丢弃，不折行也不报错。
func ComposeCard(p *Page, m Measurer, box CellBox, title, aside string, items []KV, st CardStyle) {
	fill := cardFillColor
	p.Rects = append(p.Rects, Rect{
		X:           box.X,
		Y:           box.Y,
		Width:       box.Width,
		Height:      box.Height,
		Radius:      st.CornerRadius,
		StrokeColor: cardBorderColor,
		StrokeWidth: 1,
		FillColor:   &fill,
	})

	titleY := box.Top() - cardInnerMargin - st.TitleSize
	p.Texts = append(p.Texts, TextBox{
		Content: title,
		X:       box.X + cardInnerMargin,
		Y:       titleY,
		Size:    st.TitleSize,
		Color:   cardTitleColor,
	})
	if aside != "" {
		w := m.Measure(aside, TextStyle{Size: st.AsideSize})
		p.Texts = append(p.Texts, TextBox{
			Content: aside,
			X:       box.Right() - cardInnerMargin - w,
			Y:       titleY,
			Size:    st.AsideSize,
			Color:   cardTitleColor,
		})
	}
	p.Lines = append(p.Lines, Line{
		X1:    box.X + cardInnerMargin,
		Y1:    titleY - 4,
		X2:    box.Right() - cardInnerMargin,
		Y2:    titleY - 4,
		Color: cardDividerColor,
		Width: 0.6,
	})

	perColumn := CardColumnCapacity(box.Height, st.BodySize)
	left, middle, right := SplitColumns(items, perColumn)
	if len(right) > perColumn {
		right = right[:perColumn]
	}

	lineHeight := st.BodySize + 4
	colWidth := (box.Width - 2*cardInnerMargin - 2*cardColumnGap) / 3
	bodyTop := titleY - 20
	for c, column := range [][]KV{left, middle, right} {
		x := box.X + cardInnerMargin + float64(c)*(colWidth+cardColumnGap)
		y := bodyTop
		for _, kv := range column {
			p.Texts = append(p.Texts, TextBox{
				Content: kv.Key + ": " + kv.Value,
				X:       x,
				Y:       y,
				Size:    st.BodySize,
				Color:   cardBodyColor,
			})
			y -= lineHeight
		}
	}
}

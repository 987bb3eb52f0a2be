package layout

import "math"

// GridSpec 描述把一张页面切分为 Cols x Rows 个单元格的方式。
// 两种模式：
//   - 平铺模式（CellHeight == 0）：单元格高度由可用高度平均分配，
//     行数严格等于 Rows，底部不留空隙；
//   - 定高模式（CellHeight > 0）：单元格高度由调用方给定，放不下时
//     行数向下收缩（绝不放大），底部允许留白。
type GridSpec struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Gutter     float64
	Cols       int
	Rows       int
	CellHeight float64
}

// CellBox 是一个单元格的包围盒，原点在页面左下角。
type CellBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right 返回盒子的右边界 x 坐标。
func (b CellBox) Right() float64 { return b.X + b.Width }

// Top 返回盒子的上边界 y 坐标。
func (b CellBox) Top() float64 { return b.Y + b.Height }

// normalized 把行列数钳到至少 1。参数只钳不拒：越界值静默修正为最近的合法值。
func (g GridSpec) normalized() GridSpec {
	if g.Cols < 1 {
		g.Cols = 1
	}
	if g.Rows < 1 {
		g.Rows = 1
	}
	return g
}

// UsableWidth 返回去掉左右页边距后的可用宽度。
func (g GridSpec) UsableWidth() float64 { return g.PageWidth - 2*g.Margin }

// UsableHeight 返回去掉上下页边距后的可用高度。
func (g GridSpec) UsableHeight() float64 { return g.PageHeight - 2*g.Margin }

// CellWidth 返回单元格宽度：(可用宽度 - (列数-1)*间距) / 列数。
func (g GridSpec) CellWidth() float64 {
	g = g.normalized()
	return (g.UsableWidth() - float64(g.Cols-1)*g.Gutter) / float64(g.Cols)
}

// EffectiveRows 返回实际每页行数，以及是否发生了向下收缩。
// 定高模式下 effective = min(Rows, floor((可用高+间距)/(格高+间距)))，下限 1；
// 平铺模式下行数恒等于 Rows。
func (g GridSpec) EffectiveRows() (int, bool) {
	g = g.normalized()
	if g.CellHeight <= 0 {
		return g.Rows, false
	}
	fit := int(math.Floor((g.UsableHeight() + g.Gutter) / (g.CellHeight + g.Gutter)))
	if fit < 1 {
		fit = 1
	}
	if fit < g.Rows {
		return fit, true
	}
	return g.Rows, false
}

// cellHeight 返回单元格高度；平铺模式下把可用高度平均分给 Rows 行。
func (g GridSpec) cellHeight() float64 {
	g = g.normalized()
	if g.CellHeight > 0 {
		return g.CellHeight
	}
	return (g.UsableHeight() - float64(g.Rows-1)*g.Gutter) / float64(g.Rows)
}

// CellsPerPage 返回每页单元格数（列数 x 实际行数）。
func (g GridSpec) CellsPerPage() int {
	g = g.normalized()
	rows, _ := g.EffectiveRows()
	return g.Cols * rows
}

// CellBox 计算第 row 行第 col 列（均为 0 起）的包围盒。
// 第 0 行是视觉上最靠近上边距的一行，行内从左到右排列。
func (g GridSpec) CellBox(row, col int) CellBox {
	g = g.normalized()
	ch := g.cellHeight()
	x := g.Margin + float64(col)*(g.CellWidth()+g.Gutter)
	top := g.PageHeight - g.Margin - float64(row)*(ch+g.Gutter)
	return CellBox{
		X:      x,
		Y:      top - ch,
		Width:  g.CellWidth(),
		Height: ch,
	}
}

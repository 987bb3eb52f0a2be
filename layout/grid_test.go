package layout

import (
	"math"
	"testing"
)

// TestCellBoxContainment 验证所有单元格都落在页边距之内，且两两互不重叠。
func TestCellBoxContainment(t *testing.T) {
	g := GridSpec{
		PageWidth:  A4Width,
		PageHeight: A4Height,
		Margin:     36,
		Gutter:     16,
		Cols:       2,
		Rows:       6,
		CellHeight: 110,
	}
	rows, _ := g.EffectiveRows()

	var boxes []CellBox
	for r := 0; r < rows; r++ {
		for c := 0; c < g.Cols; c++ {
			boxes = append(boxes, g.CellBox(r, c))
		}
	}

	const eps = 1e-9
	for i, b := range boxes {
		if b.X < g.Margin-eps || b.Right() > g.PageWidth-g.Margin+eps {
			t.Fatalf("第 %d 个格子水平越界: %+v", i, b)
		}
		if b.Y < g.Margin-eps || b.Top() > g.PageHeight-g.Margin+eps {
			t.Fatalf("第 %d 个格子垂直越界: %+v", i, b)
		}
		for j := i + 1; j < len(boxes); j++ {
			o := boxes[j]
			overlapX := b.X < o.Right()-eps && o.X < b.Right()-eps
			overlapY := b.Y < o.Top()-eps && o.Y < b.Top()-eps
			if overlapX && overlapY {
				t.Fatalf("格子 %d 与 %d 重叠: %+v %+v", i, j, b, o)
			}
		}
	}
}

// TestEffectiveRowsClamp 验证定高模式下放不下的行数向下收缩，下限为 1。
func TestEffectiveRowsClamp(t *testing.T) {
	base := GridSpec{
		PageWidth:  A4Width,
		PageHeight: A4Height,
		Margin:     36,
		Gutter:     16,
		Cols:       2,
		CellHeight: 110,
	}

	g := base
	g.Rows = 6
	if rows, clamped := g.EffectiveRows(); rows != 6 || clamped {
		t.Fatalf("6 行放得下，不应收缩: rows=%d clamped=%v", rows, clamped)
	}

	g.Rows = 9
	if rows, clamped := g.EffectiveRows(); rows != 6 || !clamped {
		t.Fatalf("9 行应收缩到 6: rows=%d clamped=%v", rows, clamped)
	}

	g.CellHeight = 10000
	if rows, clamped := g.EffectiveRows(); rows != 1 || !clamped {
		t.Fatalf("格高超过页高时行数下限为 1: rows=%d clamped=%v", rows, clamped)
	}
}

// TestTilingMode 验证平铺模式：行数恒等于 Rows，底部不留空隙。
func TestTilingMode(t *testing.T) {
	g := GridSpec{
		PageWidth:  A4Width,
		PageHeight: A4Height,
		Margin:     8 * MmToPt,
		Cols:       2,
		Rows:       3,
	}
	rows, clamped := g.EffectiveRows()
	if rows != 3 || clamped {
		t.Fatalf("平铺模式行数恒等于 Rows: rows=%d clamped=%v", rows, clamped)
	}

	bottom := g.CellBox(2, 0)
	if math.Abs(bottom.Y-g.Margin) > 1e-9 {
		t.Fatalf("平铺模式底行应贴住下边距: Y=%g margin=%g", bottom.Y, g.Margin)
	}
	top := g.CellBox(0, 0)
	if math.Abs(top.Top()-(g.PageHeight-g.Margin)) > 1e-9 {
		t.Fatalf("首行应贴住上边距: top=%g", top.Top())
	}
	if math.Abs(3*top.Height-g.UsableHeight()) > 1e-9 {
		t.Fatalf("三行应平分可用高度: cell=%g usable=%g", top.Height, g.UsableHeight())
	}
}

// TestGridNormalize 验证非法行列数被钳到 1 而不是拒绝。
func TestGridNormalize(t *testing.T) {
	g := GridSpec{PageWidth: A4Width, PageHeight: A4Height, Margin: 36, Cols: 0, Rows: -2}
	if per := g.CellsPerPage(); per != 1 {
		t.Fatalf("0x-2 网格应钳为 1x1: perPage=%d", per)
	}
}

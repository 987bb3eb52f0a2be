package layout

import "testing"

// stubMeasurer 以固定的每字符步进测量，宽度只与字符数和字号相关。
type stubMeasurer struct {
	perRune float64
}

func (m stubMeasurer) Measure(text string, style TextStyle) float64 {
	n := 0
	for range text {
		n++
	}
	return float64(n) * m.perRune * style.Size
}

// TestFitHeaderNoShrink 验证预算充裕时返回完整模板。
func TestFitHeaderNoShrink(t *testing.T) {
	m := stubMeasurer{perRune: 0.5}
	tpl := DefaultHeaderTemplate("1111重默 all")
	want := "1111重默 all Name________ Class___"

	width := m.Measure(want, TextStyle{Size: 11, Bold: true})
	got, overflow := FitHeader(tpl, m, width+HeaderSafety+1, 11)
	if got != want {
		t.Fatalf("期望完整标题 %q，实际 %q", want, got)
	}
	if overflow {
		t.Fatalf("预算充裕不应标记溢出")
	}
}

// TestFitHeaderScenario 复现基准场景：预算恰好等于
// "1111 Name__ Class_" 的宽度时，两段填充分别缩到下限 2 和 1。
func TestFitHeaderScenario(t *testing.T) {
	m := stubMeasurer{perRune: 0.5}
	tpl := DefaultHeaderTemplate("1111")
	want := "1111 Name__ Class_"

	budget := m.Measure(want, TextStyle{Size: 11, Bold: true})
	got, overflow := FitHeader(tpl, m, budget+HeaderSafety, 11)
	if got != want {
		t.Fatalf("期望 %q，实际 %q", want, got)
	}
	if overflow {
		t.Fatalf("刚好放下不应标记溢出")
	}
}

// TestFitHeaderTight 验证填充到底后去掉第二个标签前的空格，
// 仍超宽时接受溢出并如实返回标记。
func TestFitHeaderTight(t *testing.T) {
	m := stubMeasurer{perRune: 0.5}
	tpl := DefaultHeaderTemplate("1111")

	got, overflow := FitHeader(tpl, m, 1, 11)
	want := "1111 Name__Class_"
	if got != want {
		t.Fatalf("期望紧凑标题 %q，实际 %q", want, got)
	}
	if !overflow {
		t.Fatalf("预算 1pt 必然溢出，应返回 true")
	}
}

// TestFitHeaderMonotonic 验证预算收紧时结果宽度单调不增，且迭代必然终止。
func TestFitHeaderMonotonic(t *testing.T) {
	m := stubMeasurer{perRune: 0.5}
	tpl := DefaultHeaderTemplate("0420重默 U3词组")
	style := TextStyle{Size: 11, Bold: true}

	prev := -1.0
	for budget := 300.0; budget >= 10; budget -= 10 {
		got, _ := FitHeader(tpl, m, budget, 11)
		w := m.Measure(got, style)
		if prev >= 0 && w > prev {
			t.Fatalf("预算 %g 时宽度 %g 大于更宽预算下的 %g", budget, w, prev)
		}
		prev = w
	}
}

package layout

import "testing"

// TestWrapTextReconstruct 验证折行后各行拼接还原原串，且每行不超宽。
func TestWrapTextReconstruct(t *testing.T) {
	m := stubMeasurer{perRune: 1} // 每字符宽 = 字号
	style := TextStyle{Size: 1}

	samples := []string{
		"1. 放心好了，别着急",
		"2. take it easy",
		"一二三四五六七八九十",
	}
	for _, s := range samples {
		lines := WrapText(m, s, style, 5)
		got := ""
		for _, line := range lines {
			if w := m.Measure(line, style); w > 5 {
				t.Fatalf("%q 折出超宽行 %q (w=%g)", s, line, w)
			}
			got += line
		}
		if got != s {
			t.Fatalf("折行拼接还原失败: 期望 %q 实际 %q", s, got)
		}
	}
}

// TestWrapTextNoLimit 验证 limit <= 0 时不折行，空串返回空。
func TestWrapTextNoLimit(t *testing.T) {
	m := stubMeasurer{perRune: 1}
	style := TextStyle{Size: 1}

	lines := WrapText(m, "anything", style, 0)
	if len(lines) != 1 || lines[0] != "anything" {
		t.Fatalf("limit=0 应整行返回: %v", lines)
	}
	if lines := WrapText(m, "", style, 5); lines != nil {
		t.Fatalf("空串应返回空: %v", lines)
	}
}

// TestWrapTextSingleWideChar 验证单字符超宽时仍然独占一行而不死循环。
func TestWrapTextSingleWideChar(t *testing.T) {
	m := stubMeasurer{perRune: 10}
	lines := WrapText(m, "你好", TextStyle{Size: 1}, 5)
	if len(lines) != 2 {
		t.Fatalf("每个超宽字符应独占一行: %v", lines)
	}
}

package layout

// TextStyle 描述参与测量的字体属性。具体窄/宽字体由测量后端决定，
// 这里只携带字号与是否加粗（加粗字形的步进可能更宽，测量必须区分）。
type TextStyle struct {
	Size float64
	Bold bool
}

// Measurer 负责按运测量混排文本的总步进宽度（pt）。
// 契约：宽度 = Σ 各运中逐字符步进之和，字符归属的字体由运的窄/宽类别决定；
// 相同 (文本, 字体环境, 字号) 必须得到相同宽度——头部缩排算法依赖该确定性收敛。
type Measurer interface {
	Measure(text string, style TextStyle) float64
}

// WrapText 用贪心算法把 s 按宽度 limit 切成多行，行内不留分割标记。
// 中英混排没有稳定的空白分割机会，这里按字符切分；limit <= 0 时不折行。
func WrapText(m Measurer, s string, style TextStyle, limit float64) []string {
	if s == "" {
		return nil
	}
	if limit <= 0 {
		return []string{s}
	}
	var lines []string
	var cur []rune
	width := 0.0
	for _, r := range s {
		w := m.Measure(string(r), style)
		if len(cur) > 0 && width+w > limit {
			lines = append(lines, string(cur))
			cur = cur[:0]
			width = 0
		}
		cur = append(cur, r)
		width += w
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

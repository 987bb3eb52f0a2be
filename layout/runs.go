package layout

// TextRun 是同一书写系统的极大连续子串。
// Wide 为假表示可打印 ASCII（用西文字体），为真表示其余所有字符（用中文字体）。
// 这是“有紧凑拉丁字形”与“需要 CJK 字体”的启发式近似，并非完整的书写系统
// 识别：带变音符的拉丁文会被归入宽运，这是既定取舍。
type TextRun struct {
	Text string `json:"text"`
	Wide bool   `json:"wide"`
}

// isNarrow 判断单个字符是否落在可打印 ASCII 区间 0x20-0x7E。
func isNarrow(r rune) bool { return r >= 0x20 && r <= 0x7E }

// SplitRuns 将字符串切分为窄/宽交替的运序列，保持原有顺序与字符。
// 空串返回空序列；相邻同类字符合并，因此结果中不存在空运，
// 也不存在相邻同类的两个运。
func SplitRuns(s string) []TextRun {
	if s == "" {
		return nil
	}
	var runs []TextRun
	var cur []rune
	curWide := false
	for i, r := range s {
		wide := !isNarrow(r)
		if i == 0 {
			curWide = wide
		}
		if wide != curWide {
			runs = append(runs, TextRun{Text: string(cur), Wide: curWide})
			cur = cur[:0]
			curWide = wide
		}
		cur = append(cur, r)
	}
	runs = append(runs, TextRun{Text: string(cur), Wide: curWide})
	return runs
}

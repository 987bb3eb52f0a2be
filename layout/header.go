package layout

// HeaderTemplate 描述单元格顶部的一行标题：前缀 + 两段可伸缩的下划线填充。
// 形如 "{date}重默 {scope} Name________ Class___"，当整行宽于预算时，
// 先缩短 FillerA，再缩短 FillerB，最后去掉第二个标签前的空格。
type HeaderTemplate struct {
	Prefix  string
	LabelA  string
	FillerA string
	MinA    int
	LabelB  string
	FillerB string
	MinB    int
}

// HeaderSafety 是测量预算的安全余量（pt），约 1mm，
// 抵消加粗渲染时的细微加宽。
const HeaderSafety = 1.0 * MmToPt

// DefaultHeaderTemplate 返回默认的 Name/Class 模板。
func DefaultHeaderTemplate(prefix string) HeaderTemplate {
	return HeaderTemplate{
		Prefix:  prefix,
		LabelA:  "Name",
		FillerA: "________",
		MinA:    2,
		LabelB:  "Class",
		FillerB: "___",
		MinB:    1,
	}
}

// assemble 拼出标题行；tight 为真时省略第二个标签前的空格。
func (t HeaderTemplate) assemble(fillerA, fillerB string, tight bool) string {
	sep := " "
	if tight {
		sep = ""
	}
	return t.Prefix + " " + t.LabelA + fillerA + sep + t.LabelB + fillerB
}

// FitHeader 生成一行在 maxWidth 内的标题。
// 测量使用加粗样式：最终渲染就是加粗的，而加粗字形不会比常规更窄，
// 用最终字重测量可以避免排完版之后再溢出。
//
// 缩排是贪心且单调的：每轮要么严格减少一个字符，要么终止，
// 迭代次数不超过两段填充的初始长度之和。两段填充都到达下限后，
// 仅再做一次不可逆的去空格处理就停止——即使仍然超宽也接受
// （表现为可见的越界，而不是报错），此时第二个返回值为真。
func FitHeader(t HeaderTemplate, m Measurer, maxWidth, size float64) (string, bool) {
	style := TextStyle{Size: size, Bold: true}
	budget := maxWidth - HeaderSafety

	fa, fb := t.FillerA, t.FillerB
	header := t.assemble(fa, fb, false)
	for m.Measure(header, style) > budget {
		if len(fa) > t.MinA {
			fa = fa[:len(fa)-1]
		} else if len(fb) > t.MinB {
			fb = fb[:len(fb)-1]
		} else {
			header = t.assemble(fa, fb, true)
			return header, m.Measure(header, style) > budget
		}
		header = t.assemble(fa, fb, false)
	}
	return header, false
}

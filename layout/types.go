package layout

// 该文件定义布局结果与绘图原语，供排版计算、渲染与调试 JSON 共用。
// 坐标单位统一为 pt，原点在页面左下角（与 PDF 坐标系一致）。

// Result 保存排版后的全部页面与文档元信息。
type Result struct {
	Pages []Page       `json:"pages"`
	Meta  DocumentMeta `json:"meta"`
}

// Page 记录页面尺寸与可以直接渲染的元素。
// 渲染顺序：先矩形（背景），再直线，最后文本。
type Page struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Rects  []Rect    `json:"rects,omitempty"`
	Lines  []Line    `json:"lines,omitempty"`
	Texts  []TextBox `json:"texts"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// TextBox 表示一行已经定位好的文本。
// X/Y 为首字符的基线起点；中英混排的运分割与换字体由渲染器完成。
type TextBox struct {
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
	Bold    bool    `json:"bold,omitempty"`
	Color   Color   `json:"color"`
}

// Line 表示一条线段。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"` // 线宽（pt），<=0 时由渲染器给默认值
}

// Rect 表示一个矩形，Radius > 0 时渲染为圆角矩形。
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Radius      float64 `json:"radius,omitempty"`
	StrokeColor Color   `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	FillColor   *Color  `json:"fillColor,omitempty"` // 为空表示不填充
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// A4 页面尺寸（pt）。
const (
	A4Width  = 595.2756
	A4Height = 841.8898
)

// PageSize 根据纸张方向返回 A4 宽高；landscape 为真时横置。
func PageSize(landscape bool) (w, h float64) {
	if landscape {
		return A4Height, A4Width
	}
	return A4Width, A4Height
}

// NewPage 创建一张空页面。
func NewPage(width, height float64) Page {
	return Page{Width: width, Height: height}
}

package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/xugehan/english-related-generator/fonts"
	"github.com/xugehan/english-related-generator/layout"
	"github.com/xugehan/english-related-generator/renderer"
)

const defaultStrokeWidth = 0.2 // mm

// Renderer 基于 github.com/tdewolff/canvas 绘制布局结果，
// 同时实现 layout.Measurer：按运测量中英混排文本。
//
// 字体分两族：窄族（内置 Go Regular/Bold，覆盖可打印 ASCII）与
// 宽族（调用方加载的中文字体）。未加载或加载失败时宽族退回窄族，
// 渲染继续进行，只是宽字符可能缺字形——通过 Warnings 提示调用方。
type Renderer struct {
	mu       sync.Mutex
	narrow   *canvas.FontFamily
	wide     *canvas.FontFamily
	faces    map[faceKey]*canvas.FontFace
	warnings []string
	initErr  error
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

type faceKey struct {
	wide  bool
	bold  bool
	size  float64
	color layout.Color
}

// New 创建一个渲染器，窄族字体立即就绪。
func New() *Renderer {
	r := &Renderer{faces: map[faceKey]*canvas.FontFace{}}
	fam := canvas.NewFontFamily("latin")
	if err := fam.LoadFont(fonts.Fallback(), 0, canvas.FontRegular); err != nil {
		r.initErr = fmt.Errorf("加载内置字体失败: %w", err)
		return r
	}
	if err := fam.LoadFont(fonts.FallbackBold(), 0, canvas.FontBold); err != nil {
		r.initErr = fmt.Errorf("加载内置加粗字体失败: %w", err)
		return r
	}
	r.narrow = fam
	return r
}

// LoadWideFont 从磁盘加载中文字体（.ttf/.ttc，集合取第一个字面）。
// 绝不失败：路径缺失、文件损坏都降级为内置西文字体并返回一条
// 警告文本（成功时为空串），由调用方决定如何提示用户。
func (r *Renderer) LoadWideFont(path string) string {
	if path == "" {
		return r.warn("未指定中文字体，宽字符将使用内置西文字体（可能缺字形）")
	}
	data, err := fonts.Load(path)
	if err != nil {
		return r.warn(fmt.Sprintf("中文字体 %s 读取失败，已退回内置字体: %v", path, err))
	}
	return r.LoadWideFontBytes(path, data)
}

// LoadWideFontBytes 用内存中的字体数据加载宽族（例如用户上传的字体）。
func (r *Renderer) LoadWideFontBytes(name string, data []byte) string {
	fam := canvas.NewFontFamily("cjk")
	if err := fam.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return r.warn(fmt.Sprintf("中文字体 %s 解析失败，已退回内置字体: %v", name, err))
	}
	r.mu.Lock()
	r.wide = fam
	// 字体环境变了，已缓存的字面作废
	r.faces = map[faceKey]*canvas.FontFace{}
	r.mu.Unlock()
	return ""
}

func (r *Renderer) warn(msg string) string {
	r.mu.Lock()
	r.warnings = append(r.warnings, msg)
	r.mu.Unlock()
	return msg
}

// Warnings 返回累计的降级警告。
func (r *Renderer) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// face 返回 (宽/窄, 字重, 字号, 颜色) 对应的字面，带缓存。
// 宽族没有独立的加粗字面（CJK 字体通常只有单一字重），加粗请求
// 落在常规字面上；加粗字形不会比常规更窄的前提因此依然成立。
func (r *Renderer) face(wide, bold bool, size float64, col layout.Color) (*canvas.FontFace, error) {
	if r.initErr != nil {
		return nil, r.initErr
	}
	key := faceKey{wide: wide, bold: bold, size: size, color: col}
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[key]; ok {
		return f, nil
	}
	fam := r.narrow
	style := canvas.FontRegular
	if wide && r.wide != nil {
		fam = r.wide
	} else if bold {
		style = canvas.FontBold
	}
	f := fam.Face(size, colorFromLayout(col), style, canvas.FontNormal)
	r.faces[key] = f
	return f, nil
}

var measureColor = layout.Color{R: 0, G: 0, B: 0}

// Measure 实现 layout.Measurer：把文本切运后逐字符累加步进宽度。
// 逐字符求和（而非整段成形）保证了可加性与确定性——
// 头部缩排的收敛依赖同一文本在同一字体环境下宽度恒定。
func (r *Renderer) Measure(text string, style layout.TextStyle) float64 {
	total := 0.0
	for _, run := range layout.SplitRuns(text) {
		face, err := r.face(run.Wide, style.Bold, style.Size, measureColor)
		if err != nil {
			return 0
		}
		total += runWidth(face, run.Text)
	}
	return total * layout.MmToPt
}

// runWidth 返回一个运的逐字符步进之和（mm）。
func runWidth(face *canvas.FontFace, s string) float64 {
	w := 0.0
	for _, c := range s {
		w += face.TextWidth(string(c))
	}
	return w
}

// Render 把布局结果渲染为多页 PDF 字节流。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}
	if r.initErr != nil {
		return nil, r.initErr
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, toMm(result.Pages[0].Width), toMm(result.Pages[0].Height), nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c, err := r.drawPage(page)
		if err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPreview 只光栅化第一页，按 dpi 返回 PNG 数据。
func (r *Renderer) RenderPreview(result *layout.Result, dpi float64) ([]byte, error) {
	if result == nil || len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可预览的页面")
	}
	if r.initErr != nil {
		return nil, r.initErr
	}
	if dpi <= 0 {
		dpi = 120
	}
	c, err := r.drawPage(result.Pages[0])
	if err != nil {
		return nil, err
	}
	img := rasterizer.Draw(c, canvas.DPI(dpi), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码预览 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	keywords := ""
	for i, kw := range meta.Keywords {
		if i > 0 {
			keywords += ", "
		}
		keywords += kw
	}
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// drawPage 把一页画到 canvas 上。坐标原点在左下角，与布局一致，
// 只需做一次 pt→mm 的尺度换算。
func (r *Renderer) drawPage(page layout.Page) (*canvas.Canvas, error) {
	c := canvas.New(toMm(page.Width), toMm(page.Height))
	ctx := canvas.NewContext(c)

	for _, rc := range page.Rects {
		w := toMm(rc.StrokeWidth)
		if w <= 0 {
			w = defaultStrokeWidth
		}
		if rc.FillColor != nil {
			ctx.SetFillColor(colorFromLayout(*rc.FillColor))
		} else {
			ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		}
		ctx.SetStrokeColor(colorFromLayout(rc.StrokeColor))
		ctx.SetStrokeWidth(w)
		var p *canvas.Path
		if rc.Radius > 0 {
			p = canvas.RoundedRectangle(toMm(rc.Width), toMm(rc.Height), toMm(rc.Radius))
		} else {
			p = canvas.Rectangle(toMm(rc.Width), toMm(rc.Height))
		}
		ctx.DrawPath(toMm(rc.X), toMm(rc.Y), p)
	}

	for _, ln := range page.Lines {
		w := toMm(ln.Width)
		if w <= 0 {
			w = defaultStrokeWidth
		}
		ctx.SetStrokeColor(colorFromLayout(ln.Color))
		ctx.SetStrokeWidth(w)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(toMm(ln.X2-ln.X1), toMm(ln.Y2-ln.Y1))
		ctx.DrawPath(toMm(ln.X1), toMm(ln.Y1), p)
	}

	for _, tb := range page.Texts {
		if err := r.drawTextBox(ctx, tb); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// drawTextBox 从基线起点逐运绘制一行文本，运之间按测量宽度推进。
func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	x := toMm(tb.X)
	y := toMm(tb.Y)
	for _, run := range layout.SplitRuns(tb.Content) {
		face, err := r.face(run.Wide, tb.Bold, tb.Size, tb.Color)
		if err != nil {
			return err
		}
		ctx.DrawText(x, y, canvas.NewTextLine(face, run.Text, canvas.Left))
		x += runWidth(face, run.Text)
	}
	return nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toMm 将点(pt)转换为毫米(mm)，canvas 的画布单位是 mm。
func toMm(pt float64) float64 { return pt * layout.PtToMm }

package canvasrenderer

import (
	"math"
	"strings"
	"testing"

	"github.com/xugehan/english-related-generator/layout"
)

// TestMeasureAdditivity 验证测量可加性：整串宽度等于逐字符宽度之和。
func TestMeasureAdditivity(t *testing.T) {
	r := New()
	style := layout.TextStyle{Size: 11}

	samples := []string{"hello", "Name____ Class__", "abc 123"}
	for _, s := range samples {
		sum := 0.0
		for _, c := range s {
			sum += r.Measure(string(c), style)
		}
		whole := r.Measure(s, style)
		if diff := math.Abs(whole - sum); diff > 1e-6 {
			t.Fatalf("%q 可加性被破坏: 整串 %g 逐字符 %g", s, whole, sum)
		}
	}
}

// TestMeasureDeterministic 验证相同输入得到相同宽度，且加粗不窄于常规。
func TestMeasureDeterministic(t *testing.T) {
	r := New()
	s := "1111 Name__ Class_"
	a := r.Measure(s, layout.TextStyle{Size: 11, Bold: true})
	b := r.Measure(s, layout.TextStyle{Size: 11, Bold: true})
	if a != b {
		t.Fatalf("相同输入宽度不同: %g vs %g", a, b)
	}
	plain := r.Measure(s, layout.TextStyle{Size: 11})
	if a < plain-1e-6 {
		t.Fatalf("加粗宽度 %g 不应小于常规 %g", a, plain)
	}
	if a <= 0 {
		t.Fatalf("非空文本宽度应为正: %g", a)
	}
}

// TestMeasureMonotonic 验证前缀串不宽于全串（头部缩排依赖该单调性）。
func TestMeasureMonotonic(t *testing.T) {
	r := New()
	style := layout.TextStyle{Size: 11, Bold: true}
	full := "1111 Name________ Class___"
	prev := r.Measure(full, style)
	for i := len(full) - 1; i > 0; i-- {
		w := r.Measure(full[:i], style)
		if w > prev+1e-9 {
			t.Fatalf("前缀 %q 宽于更长的串: %g > %g", full[:i], w, prev)
		}
		prev = w
	}
}

// TestLoadWideFontFallback 验证字体加载失败只降级、绝不失败。
func TestLoadWideFontFallback(t *testing.T) {
	r := New()
	if warn := r.LoadWideFont("/no/such/font.ttf"); warn == "" {
		t.Fatalf("缺失字体应返回警告")
	}
	if warn := r.LoadWideFont(""); warn == "" {
		t.Fatalf("未指定字体应返回警告")
	}
	if warn := r.LoadWideFontBytes("bad.ttf", []byte("not a font")); warn == "" {
		t.Fatalf("损坏字体应返回警告")
	}
	if len(r.Warnings()) != 3 {
		t.Fatalf("应累计 3 条警告: %v", r.Warnings())
	}
	// 降级后测量仍可用（宽字符落在内置字体上）
	if w := r.Measure("重默", layout.TextStyle{Size: 11}); w < 0 {
		t.Fatalf("降级后测量失败: %g", w)
	}
}

// TestRenderPDF 验证多页布局渲染出合法的 PDF 字节流。
func TestRenderPDF(t *testing.T) {
	r := New()
	res := &layout.Result{
		Meta: layout.DocumentMeta{Title: "测试", Creator: "english-related-generator"},
	}
	for i := 0; i < 2; i++ {
		page := layout.NewPage(layout.A4Width, layout.A4Height)
		fill := layout.Color{R: 247, G: 250, B: 255}
		page.Rects = append(page.Rects, layout.Rect{
			X: 36, Y: 600, Width: 250, Height: 110, Radius: 10,
			StrokeColor: layout.Color{R: 64, G: 89, B: 140}, StrokeWidth: 1,
			FillColor: &fill,
		})
		page.Lines = append(page.Lines, layout.Line{X1: 46, Y1: 680, X2: 276, Y2: 680, Color: layout.Color{R: 191, G: 204, B: 242}})
		page.Texts = append(page.Texts, layout.TextBox{
			Content: "张三 20240101", X: 46, Y: 690, Size: 10, Bold: true,
			Color: layout.Color{R: 31, G: 46, B: 89},
		})
		res.Pages = append(res.Pages, page)
	}

	data, err := r.Render(res)
	if err != nil {
		t.Fatalf("Render 失败: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("输出不是 PDF: %q", string(data[:8]))
	}
}

// TestRenderPreviewPNG 验证预览输出 PNG 且只含第一页。
func TestRenderPreviewPNG(t *testing.T) {
	r := New()
	page := layout.NewPage(layout.A4Width, layout.A4Height)
	page.Texts = append(page.Texts, layout.TextBox{Content: "preview", X: 36, Y: 800, Size: 12})
	res := &layout.Result{Pages: []layout.Page{page}}

	data, err := r.RenderPreview(res, 72)
	if err != nil {
		t.Fatalf("RenderPreview 失败: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Fatalf("输出不是 PNG")
	}
}

// TestRenderEmpty 验证空结果被拒绝。
func TestRenderEmpty(t *testing.T) {
	r := New()
	if _, err := r.Render(nil); err == nil {
		t.Fatalf("nil 结果应报错")
	}
	if _, err := r.Render(&layout.Result{}); err == nil {
		t.Fatalf("零页结果应报错")
	}
}

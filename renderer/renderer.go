package renderer

import "github.com/xugehan/english-related-generator/layout"

// Renderer 将布局结果输出为最终文件。
// Render 返回多页 PDF 的二进制数据；RenderPreview 只光栅化第一页，
// 按给定 DPI 返回 PNG 数据，供参数调整时快速预览。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
	RenderPreview(result *layout.Result, dpi float64) ([]byte, error)
}

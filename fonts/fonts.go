package fonts

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 包 fonts 提供西文兜底字体与磁盘字体读取。
// 兜底字体（Go Regular/Bold）随二进制内置，保证任何环境下都有可用字形；
// 它不含 CJK 字形，宽字符的渲染质量由调用方加载的中文字体决定。

// Fallback 返回内置的常规字重字体数据。
func Fallback() []byte { return goregular.TTF }

// FallbackBold 返回内置的加粗字重字体数据。
func FallbackBold() []byte { return gobold.TTF }

// Load 从磁盘读取一个 TTF/TTC 字体文件。
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体文件 %s 失败: %w", path, err)
	}
	return data, nil
}

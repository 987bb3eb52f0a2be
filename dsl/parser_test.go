package dsl

import (
	"strings"
	"testing"

	"github.com/xugehan/english-related-generator/layout"
)

const sampleSheet = `
sheet {
  # 第 11 周重默
  date: "1111"
  scope: "eager-effort"
  grid: 2 x 3
  font-size: 11pt
  padding: 3mm
  items {
    "n. 鹰"
    "放心好了，别着急"
    "take it easy"
  }
}
`

// TestParseSample 验证示例 sheet 文件的完整解析。
func TestParseSample(t *testing.T) {
	sheet, err := ParseString(sampleSheet)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	if got := sheet.StringSetting("date"); got != "1111" {
		t.Fatalf("date 期望 1111，实际 %q", got)
	}
	if got := sheet.StringSetting("scope"); got != "eager-effort" {
		t.Fatalf("scope 期望 eager-effort，实际 %q", got)
	}

	cols, rows, ok := sheet.GridSetting()
	if !ok || cols != 2 || rows != 3 {
		t.Fatalf("grid 期望 2x3，实际 %dx%d ok=%v", cols, rows, ok)
	}

	fs := sheet.LengthSetting("font-size")
	if fs.Value != 11 || fs.Unit != layout.UnitPT {
		t.Fatalf("font-size 期望 11pt，实际 %+v", fs)
	}
	pad := sheet.LengthSetting("padding")
	if pad.Value != 3 || pad.Unit != layout.UnitMM {
		t.Fatalf("padding 期望 3mm，实际 %+v", pad)
	}

	items := sheet.Items()
	want := []string{"n. 鹰", "放心好了，别着急", "take it easy"}
	if len(items) != len(want) {
		t.Fatalf("词条数量期望 %d，实际 %d: %v", len(want), len(items), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("第 %d 条期望 %q，实际 %q", i, want[i], items[i])
		}
	}
}

// TestParseReader 验证 io.Reader 入口与 Parse 一致。
func TestParseReader(t *testing.T) {
	sheet, err := Parse(strings.NewReader(sampleSheet))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(sheet.Items()) != 3 {
		t.Fatalf("词条数量期望 3，实际 %d", len(sheet.Items()))
	}
}

// TestParseMissingSettings 验证缺省键返回零值而不报错。
func TestParseMissingSettings(t *testing.T) {
	sheet, err := ParseString(`sheet {
  items { "only" }
}`)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if got := sheet.StringSetting("date"); got != "" {
		t.Fatalf("缺省 date 应为空，实际 %q", got)
	}
	if !sheet.LengthSetting("font-size").IsZero() {
		t.Fatalf("缺省 font-size 应为零值")
	}
	if _, _, ok := sheet.GridSetting(); ok {
		t.Fatalf("缺省 grid 不应返回 ok")
	}
}

// TestParseInvalid 验证语法错误得到报告。
func TestParseInvalid(t *testing.T) {
	if _, err := ParseString(`sheet { date "no colon" }`); err == nil {
		t.Fatalf("缺冒号应报错")
	}
	if _, err := ParseString(`items { "orphan" }`); err == nil {
		t.Fatalf("缺少 sheet 包裹应报错")
	}
}

// TestParseUnitlessFontSize 验证无单位数字按原样保留，由调用方解释为 pt。
func TestParseUnitlessFontSize(t *testing.T) {
	sheet, err := ParseString(`sheet {
  font-size: 12
  items { "x" }
}`)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	fs := sheet.LengthSetting("font-size")
	if fs.Value != 12 || fs.Unit != layout.UnitNone {
		t.Fatalf("font-size 期望无单位 12，实际 %+v", fs)
	}
}

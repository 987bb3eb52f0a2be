package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xugehan/english-related-generator/dsl"
	"github.com/xugehan/english-related-generator/layout"
	canvasrenderer "github.com/xugehan/english-related-generator/renderer/canvas"
	"github.com/xugehan/english-related-generator/slips"
	"github.com/xugehan/english-related-generator/worksheet"
	"github.com/xugehan/english-related-generator/xlsx"
)

func main() {
	sheetPath := flag.String("sheet", "", "重默纸描述文件路径（.sheet）")
	excelPath := flag.String("excel", "", "成绩表路径（.xlsx，与 -sheet 二选一）")
	output := flag.String("out", "output/out.pdf", "PDF 输出路径")
	preview := flag.String("preview", "", "预览 PNG 输出路径（只渲染第一页）")
	fontPath := flag.String("font", "", "中文字体路径（.ttf/.ttc），缺省回落内置西文字体")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")

	title := flag.String("title", "", "小分条页眉标题")
	cols := flag.Int("cols", 0, "每页列数（0 取默认）")
	rows := flag.Int("rows", 0, "每页行数（0 取默认）")
	cardHeight := flag.Float64("card-h", 0, "卡片高度（pt，0 取默认）")
	fields := flag.String("fields", "", "正文列名，逗号分隔，缺省取身份列之外的全部列")
	landscape := flag.Bool("landscape", false, "横版页面（仅小分条）")
	flag.Parse()

	if (*sheetPath == "") == (*excelPath == "") {
		log.Fatal("必须且只能指定 -sheet 或 -excel 之一")
	}

	r := canvasrenderer.New()
	if warn := r.LoadWideFont(*fontPath); warn != "" {
		log.Printf("[警告] %s", warn)
	}

	var (
		doc      *layout.Result
		warnings []string
		err      error
	)
	if *sheetPath != "" {
		doc, warnings, err = runWorksheet(*sheetPath, *cols, *rows, r)
	} else {
		doc, warnings, err = runSlips(*excelPath, *title, *cols, *rows, *cardHeight, *fields, *landscape, *preview != "", r)
	}
	if err != nil {
		log.Fatalf("生成失败: %v", err)
	}
	for _, w := range warnings {
		log.Printf("[警告] %s", w)
	}

	if *debug != "" {
		if err := writeDebug(doc, *debug); err != nil {
			log.Fatalf("%v", err)
		}
	}

	if *preview != "" {
		data, err := r.RenderPreview(doc, 0)
		if err != nil {
			log.Fatalf("渲染预览失败: %v", err)
		}
		if err := writeOut(*preview, data); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("已生成预览：%s\n", *preview)
		return
	}

	data, err := r.Render(doc)
	if err != nil {
		log.Fatalf("渲染 PDF 失败: %v", err)
	}
	if err := writeOut(*output, data); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", *output)
}

// runWorksheet 串联 sheet 文件解析与重默纸排版。
func runWorksheet(path string, cols, rows int, r *canvasrenderer.Renderer) (*layout.Result, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("无法打开 sheet 文件 %s: %w", path, err)
	}
	defer file.Close()

	sheet, err := dsl.Parse(file)
	if err != nil {
		return nil, nil, fmt.Errorf("解析 sheet 文件失败: %w", err)
	}

	opts := worksheet.OptionsFromSheet(sheet)
	if cols > 0 {
		opts.Cols = cols
	}
	if rows > 0 {
		opts.Rows = rows
	}
	doc, err := worksheet.Generate(sheet.Items(), r, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("排版重默纸失败: %w", err)
	}
	return doc.Layout, doc.Warnings, nil
}

// runSlips 串联成绩表读取与小分条排版。
func runSlips(path, title string, cols, rows int, cardHeight float64, fields string, landscape, previewOnly bool, r *canvasrenderer.Renderer) (*layout.Result, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("无法打开成绩表 %s: %w", path, err)
	}
	defer file.Close()

	_, records, err := xlsx.ReadRecords(file)
	if err != nil {
		return nil, nil, fmt.Errorf("读取成绩表失败: %w", err)
	}

	opts := slips.Options{
		Title:      title,
		Cols:       cols,
		Rows:       rows,
		CardHeight: cardHeight,
		Landscape:  landscape,
	}
	if fields != "" {
		for _, f := range strings.Split(fields, ",") {
			if f = strings.TrimSpace(f); f != "" {
				opts.Fields = append(opts.Fields, f)
			}
		}
	}

	var doc *slips.Document
	if previewOnly {
		doc, err = slips.Preview(records, r, opts)
	} else {
		doc, err = slips.Generate(records, r, opts)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("排版小分条失败: %w", err)
	}
	return doc.Layout, doc.Warnings, nil
}

func writeOut(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	return nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

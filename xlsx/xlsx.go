// Package xlsx reads grade workbooks and builds the downloadable
// template, both through excelize.
package xlsx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/xugehan/english-related-generator/record"
)

var (
	ErrEmptySheet = errors.New("xlsx: first sheet has no rows")
	ErrNoColumns  = errors.New("xlsx: header row has no column names")
)

// ReadRecords parses the first sheet of a workbook. The first row
// supplies column names, every following row becomes one record.
// Short rows leave trailing cells empty; fully blank rows are skipped.
func ReadRecords(r io.Reader) ([]string, []record.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsx: open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("xlsx: read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptySheet
	}

	var columns []string
	for _, cell := range rows[0] {
		columns = append(columns, strings.TrimSpace(cell))
	}
	for len(columns) > 0 && columns[len(columns)-1] == "" {
		columns = columns[:len(columns)-1]
	}
	if len(columns) == 0 {
		return nil, nil, ErrNoColumns
	}

	var records []record.Record
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rec := record.Record{Columns: columns, Values: map[string]string{}}
		for i, col := range columns {
			if i < len(row) {
				rec.Values[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return columns, records, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// templateColumns mirrors the template workbook handed to teachers:
// three identity columns plus sample score fields.
var templateColumns = []string{
	"姓名/Name", "学号/Code", "班级/Class",
	"听力/Listening", "笔试/Written", "总分/Total",
}

var templateRows = [][]interface{}{
	{"张三", "20240101", "高一(2)班", 28.5, 66, 94.5},
	{"李四", "20240102", "高一(2)班", 30, 62.5, 92.5},
	{"王五", "20240103", "高一(3)班", 27, 70, 97},
}

// Template builds the example workbook offered for download: bold
// bilingual header row plus three sample records.
func Template() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range templateColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: template header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, fmt.Errorf("xlsx: template header: %w", err)
		}
	}
	for r, row := range templateRows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("xlsx: template cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: template row: %w", err)
			}
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: template style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(templateColumns), 1)
	if err != nil {
		return nil, fmt.Errorf("xlsx: template range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("xlsx: template header style: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "F", 16); err != nil {
		return nil, fmt.Errorf("xlsx: template widths: %w", err)
	}

	return f.WriteToBuffer()
}

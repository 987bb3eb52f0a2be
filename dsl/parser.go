// Package dsl parses dictation sheet description files.
//
// A sheet file fixes the header fields, the grid and the word list in
// one place, so a teacher can regenerate the same worksheet later:
//
//	sheet {
//	  date: "1111"
//	  scope: "eager-effort"
//	  grid: 2 x 3
//	  font-size: 11pt
//	  padding: 3mm
//	  items {
//	    "n. 鹰"
//	    "放心好了，别着急"
//	  }
//	}
package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/xugehan/english-related-generator/layout"
)

var (
	sheetLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[{}:]`},
	})

	sheetParser = participle.MustBuild[Sheet](
		participle.Lexer(sheetLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// Sheet is the root AST node of a sheet file.
type Sheet struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Entries []*Entry       `parser:"Newline* 'sheet' '{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Entry is one top-level statement: a key:value setting or the items block.
type Entry struct {
	Items   *ItemsBlock `parser:"  @@"`
	Setting *Setting    `parser:"| @@"`
}

// Setting uses colon syntax (key: value).
type Setting struct {
	Key   string `parser:"@Ident"`
	Value *Value `parser:"':' @@"`
}

// Value is a setting's right-hand side.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Grid   *GridValue     `parser:"| @@"`
	Length *LengthLiteral `parser:"| @Number"`
}

// GridValue captures `COLS x ROWS`. The numbers stay raw so a failed
// alternative backtracks instead of erroring on a unit suffix.
type GridValue struct {
	Cols string `parser:"@Number"`
	Rows string `parser:"'x' @Number"`
}

// ItemsBlock lists the dictation entries, one string per line.
type ItemsBlock struct {
	Items []StringLiteral `parser:"'items' '{' Newline* ( @String Newline* )* '}'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// LengthLiteral keeps a number together with its written unit.
type LengthLiteral layout.Length

// Capture implements participle.Capture.
func (l *LengthLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("length literal capture requires value")
	}
	*l = LengthLiteral(layout.ParseRawLengthStr(values[0]))
	return nil
}

// Setting lookups are case-sensitive; a repeated key keeps the last value.

// StringSetting returns the string value of a key, "" when absent.
func (s *Sheet) StringSetting(key string) string {
	out := ""
	for _, e := range s.Entries {
		if e.Setting != nil && e.Setting.Key == key && e.Setting.Value != nil && e.Setting.Value.String != nil {
			out = string(*e.Setting.Value.String)
		}
	}
	return out
}

// LengthSetting returns the length value of a key, zero Length when absent.
func (s *Sheet) LengthSetting(key string) layout.Length {
	out := layout.Length{}
	for _, e := range s.Entries {
		if e.Setting != nil && e.Setting.Key == key && e.Setting.Value != nil && e.Setting.Value.Length != nil {
			out = layout.Length(*e.Setting.Value.Length)
		}
	}
	return out
}

// GridSetting returns the cols/rows of a `grid: C x R` setting.
func (s *Sheet) GridSetting() (cols, rows int, ok bool) {
	for _, e := range s.Entries {
		if e.Setting != nil && e.Setting.Key == "grid" && e.Setting.Value != nil && e.Setting.Value.Grid != nil {
			c, errC := strconv.Atoi(e.Setting.Value.Grid.Cols)
			r, errR := strconv.Atoi(e.Setting.Value.Grid.Rows)
			if errC == nil && errR == nil {
				cols, rows, ok = c, r, true
			}
		}
	}
	return cols, rows, ok
}

// Items returns the dictation entries in file order.
func (s *Sheet) Items() []string {
	var out []string
	for _, e := range s.Entries {
		if e.Items == nil {
			continue
		}
		for _, it := range e.Items.Items {
			out = append(out, string(it))
		}
	}
	return out
}

// Parse parses a sheet file from an io.Reader.
func Parse(r io.Reader) (*Sheet, error) {
	return sheetParser.Parse("", r)
}

// ParseString parses a sheet file from a string.
func ParseString(input string) (*Sheet, error) {
	return sheetParser.ParseString("", input)
}

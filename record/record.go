// Package record models tabular input rows and the identity-role
// mapping used by the grade-slip generator.
package record

import (
	"math"
	"strconv"
	"strings"
)

// Record is one data row keyed by column name. Columns keeps the
// original sheet order; Values may miss trailing cells for short rows.
type Record struct {
	Columns []string
	Values  map[string]string
}

// Get returns the raw cell for a column, "" when absent.
func (r Record) Get(column string) string {
	return r.Values[column]
}

// Display returns the formatted cell for a column.
func (r Record) Display(column string) string {
	return FormatValue(r.Get(column))
}

// FormatValue normalizes a cell for printing. Blank cells and NaN
// become "-". Numeric cells lose a useless ".0" tail (4.0 prints as
// "4") and otherwise round to two decimals with trailing zeros
// trimmed (4.50 prints as "4.5"). Non-numeric text passes through.
func FormatValue(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return FormatNumber(f)
}

// FormatNumber formats a numeric cell per the same rules.
func FormatNumber(f float64) string {
	if math.IsNaN(f) {
		return "-"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	out := strconv.FormatFloat(f, 'f', 2, 64)
	out = strings.TrimRight(out, "0")
	out = strings.TrimRight(out, ".")
	return out
}

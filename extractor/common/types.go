package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MonthKey is one of the twelve canonical month tokens (jan..dez) or the
// reserved "total" sentinel.
type MonthKey string

const (
	Jan MonthKey = "jan"
	Fev MonthKey = "fev"
	Mar MonthKey = "mar"
	Abr MonthKey = "abr"
	Mai MonthKey = "mai"
	Jun MonthKey = "jun"
	Jul MonthKey = "jul"
	Ago MonthKey = "ago"
	Set MonthKey = "set"
	Out MonthKey = "out"
	Nov MonthKey = "nov"
	Dez MonthKey = "dez"

	// Total marks the aggregate column of the report. It is classified so the
	// column mapper can recognize and skip it, but it is never emitted as a
	// MonthColumn.
	Total MonthKey = "total"
)

// MonthColumn pairs a classified month with the grid column holding its
// values. Column indices are strictly increasing within a mapped sequence.
type MonthColumn struct {
	Month  MonthKey `json:"month"`
	Column int      `json:"column"`
}

// Grid is the raw tabular payload as read from the source: rows of string
// cells in source order, no coercion. Rows may have differing lengths.
type Grid [][]string

// Cell returns the cell at (row, col), or "" when the position falls outside
// the grid. Ragged rows are common in spreadsheet exports, so out-of-range
// access is not an error.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// AccountRow is one extracted line item of the report: the title as it
// appeared in the source, the normalized lookup key derived from it, and a
// value per discovered month.
type AccountRow struct {
	Name   string                       `json:"name"`
	Key    string                       `json:"key"`
	Values map[MonthKey]decimal.Decimal `json:"values"`
}

// Value returns the row's value for the given month, or zero when the month
// was not present in the source.
func (r AccountRow) Value(month MonthKey) decimal.Decimal {
	if v, ok := r.Values[month]; ok {
		return v
	}
	return decimal.Zero
}

// IsBlank reports whether a cell holds no text worth parsing.
func IsBlank(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

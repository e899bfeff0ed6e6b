package extractor

import (
	"log"

	"github.com/julianunes2703/ipp/extractor/common"
)

// LocateHeader scans the first few grid rows for the one holding the month
// labels and returns (header row, title column). Human-maintained exports
// shuffle their preamble around, so the header is found by counting
// month-classified cells per row; when no row qualifies within the scan
// window the configured fixed positions are returned instead of an error.
func LocateHeader(grid common.Grid, cfg Config) (int, int) {
	limit := cfg.HeaderScanRows
	if limit > len(grid) {
		limit = len(grid)
	}

	for r := 0; r < limit; r++ {
		hits := 0
		for _, cell := range grid[r] {
			if _, ok := common.ClassifyMonth(cell); ok {
				hits++
			}
		}
		if hits >= cfg.HeaderMonthHits {
			// Account titles sit in the second column of the usual layout,
			// unless the header row is too narrow for one or the months start
			// right there.
			titleCol := 1
			if _, isMonth := common.ClassifyMonth(grid.Cell(r, 1)); isMonth || len(grid[r]) <= 1 {
				titleCol = 0
			}
			log.Printf("header row %d (%d month labels), title column %d", r, hits, titleCol)
			return r, titleCol
		}
	}

	log.Printf("no header row within first %d rows, falling back to row %d column %d",
		limit, cfg.FallbackHeaderRow, cfg.FallbackTitleColumn)
	return cfg.FallbackHeaderRow, cfg.FallbackTitleColumn
}

// MapMonthColumns walks the header row and pairs each month label with its
// column. The "total" column and unclassified cells are skipped. A month
// column may be followed by an auxiliary column (a vertical analysis ratio or
// index); those are detected and stepped over so they are not mistaken for a
// month of their own. Duplicate month keys are retained in encounter order.
func MapMonthColumns(grid common.Grid, headerRow int, cfg Config) []common.MonthColumn {
	if headerRow < 0 || headerRow >= len(grid) {
		return nil
	}
	header := grid[headerRow]

	start := -1
	for c, cell := range header {
		if _, ok := common.ClassifyMonth(cell); ok {
			start = c
			break
		}
	}
	if start < 0 {
		start = cfg.FallbackMonthStart
	}

	var columns []common.MonthColumn
	for c := start; c < len(header); c++ {
		key, ok := common.ClassifyMonth(header[c])
		if !ok || key == common.Total {
			continue
		}
		columns = append(columns, common.MonthColumn{Month: key, Column: c})
		if isAuxColumn(grid, headerRow, c+1, cfg) {
			c++
		}
	}
	return columns
}

// isAuxColumn reports whether the column holds an index/percentage companion
// to the month on its left: its header cell is empty and its first data cell
// is a small number, never a currency amount.
func isAuxColumn(grid common.Grid, headerRow, col int, cfg Config) bool {
	if !common.IsBlank(grid.Cell(headerRow, col)) {
		return false
	}
	value, ok := common.ParseAmountOK(grid.Cell(headerRow+1, col))
	return ok && value.Abs().LessThanOrEqual(cfg.AuxValueMax)
}

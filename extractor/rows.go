package extractor

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/julianunes2703/ipp/extractor/common"
)

// ExtractRows turns every data row below the header into an AccountRow.
// Rows without a title are dropped, as are rows whose month cells are all
// blank (section labels like "DESPESAS" with no figures of their own).
// Malformed cells parse to zero rather than failing the row. Output order
// mirrors source row order.
func ExtractRows(grid common.Grid, headerRow, titleCol int, columns []common.MonthColumn) []common.AccountRow {
	var rows []common.AccountRow

	for r := headerRow + 1; r < len(grid); r++ {
		title := strings.TrimSpace(grid.Cell(r, titleCol))
		if title == "" {
			continue
		}

		hasData := false
		for _, col := range columns {
			if !common.IsBlank(grid.Cell(r, col.Column)) {
				hasData = true
				break
			}
		}
		if !hasData {
			continue
		}

		// Duplicate month keys: the later column overwrites the earlier value
		// here, while both stay in the discovered-months list.
		values := make(map[common.MonthKey]decimal.Decimal, len(columns))
		for _, col := range columns {
			values[col.Month] = common.ParseAmount(grid.Cell(r, col.Column))
		}

		rows = append(rows, common.AccountRow{
			Name:   title,
			Key:    common.NormalizeKey(title),
			Values: values,
		})
	}

	return rows
}

package xlsx_source

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/julianunes2703/ipp/extractor/common"
)

// ReadGrid reads the first sheet of an Excel export into a Grid. Cell text is
// taken as formatted by the sheet, so locale number formatting survives for
// the downstream parser.
func ReadGrid(reader io.Reader) (common.Grid, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	grid := make(common.Grid, 0, len(rows))
	for _, row := range rows {
		grid = append(grid, row)
	}
	return grid, nil
}

package extractor

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/julianunes2703/ipp/extractor/common"
	"github.com/julianunes2703/ipp/extractor/csv_source"
	"github.com/julianunes2703/ipp/extractor/pdf_source"
	"github.com/julianunes2703/ipp/extractor/xlsx_source"
)

// Supported source formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// DetectFormat infers the source format from the target's file extension,
// defaulting to CSV for extensionless targets such as export URLs.
func DetectFormat(target string) string {
	switch strings.ToLower(filepath.Ext(target)) {
	case ".xlsx", ".xls":
		return FormatXLSX
	case ".pdf":
		return FormatPDF
	default:
		return FormatCSV
	}
}

// ReadGrid parses the raw payload into a Grid using the reader for the given
// format.
func ReadGrid(reader io.Reader, format string) (common.Grid, error) {
	switch format {
	case "", FormatCSV:
		return csv_source.ReadGrid(reader)
	case FormatXLSX:
		return xlsx_source.ReadGrid(reader)
	case FormatPDF:
		return pdf_source.ReadGrid(reader)
	default:
		return nil, fmt.Errorf("unknown source format: %s", format)
	}
}

// Process runs the extraction pass over a grid: locate the header, map the
// month columns, extract the account rows, and package everything into a
// Snapshot. It never fails; an unrecognizable layout degrades to the fixed
// fallbacks and at worst an empty row set.
func Process(grid common.Grid, cfg Config) Snapshot {
	headerRow, titleCol := LocateHeader(grid, cfg)
	columns := MapMonthColumns(grid, headerRow, cfg)

	months := make([]common.MonthKey, 0, len(columns))
	for _, col := range columns {
		months = append(months, col.Month)
	}

	rows := ExtractRows(grid, headerRow, titleCol, columns)
	log.Printf("extracted %d account rows across %d months", len(rows), len(months))

	return NewSnapshot(rows, months, cfg.Aliases)
}

// ProcessReader reads a payload in the given format and runs the extraction
// pass over it.
func ProcessReader(reader io.Reader, format string, cfg Config) (Snapshot, error) {
	grid, err := ReadGrid(reader, format)
	if err != nil {
		return NewSnapshot(nil, nil, cfg.Aliases), err
	}
	return Process(grid, cfg), nil
}

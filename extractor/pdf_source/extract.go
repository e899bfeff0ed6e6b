package pdf_source

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/dslipak/pdf"

	"github.com/julianunes2703/ipp/extractor/common"
)

// Columns in a PDF export are separated by horizontal gaps rather than a
// delimiter character; a gap wider than this (in PDF units) marks a cell
// boundary.
const cellGapWidth = 12.0

// ReadGrid extracts the text rows of a PDF export and splits each into cells
// by horizontal position. PDF extraction loses truly empty cells, so layout
// detection downstream must cope with shifted columns; the fixed fallbacks
// cover that.
func ReadGrid(reader io.Reader) (common.Grid, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	b := buf.Bytes()

	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var grid common.Grid
	for no := 1; no <= r.NumPage(); no++ {
		page := r.Page(no)
		rows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("Warning: error getting text from page %d: %v", no, err)
			continue
		}

		for _, row := range rows {
			cells := splitRow(row.Content)
			if len(cells) > 0 {
				grid = append(grid, cells)
			}
		}
	}

	return grid, nil
}

// splitRow groups a row's text fragments into cells, starting a new cell
// whenever the horizontal gap to the previous fragment exceeds cellGapWidth.
func splitRow(content []pdf.Text) []string {
	var cells []string
	var cell strings.Builder
	prevEnd := 0.0

	for i, text := range content {
		if i > 0 && text.X-prevEnd > cellGapWidth {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		} else if i > 0 {
			cell.WriteByte(' ')
		}
		cell.WriteString(text.S)
		prevEnd = text.X + text.W
	}

	if s := strings.TrimSpace(cell.String()); s != "" || len(cells) > 0 {
		cells = append(cells, s)
	}
	return cells
}

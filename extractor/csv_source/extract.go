package csv_source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/julianunes2703/ipp/extractor/common"
)

// ReadGrid parses a delimited-text export into a Grid. The delimiter is
// sniffed from the first line: pt-BR exports routinely use semicolons because
// the comma is the decimal separator.
func ReadGrid(reader io.Reader) (common.Grid, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	content := bytes.TrimPrefix(buf.Bytes(), []byte("\xef\xbb\xbf"))

	csvReader := csv.NewReader(bytes.NewReader(content))
	csvReader.Comma = sniffDelimiter(content)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	var grid common.Grid
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Warning: error reading CSV row: %v", err)
			continue
		}
		grid = append(grid, record)
	}

	return grid, nil
}

// sniffDelimiter picks the most frequent candidate delimiter on the first
// line. Defaults to comma.
func sniffDelimiter(content []byte) rune {
	line := string(content)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	delimiter := ','
	best := strings.Count(line, ",")
	for _, candidate := range []rune{';', '\t'} {
		if n := strings.Count(line, string(candidate)); n > best {
			best = n
			delimiter = candidate
		}
	}
	return delimiter
}

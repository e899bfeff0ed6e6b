package xlsx_source

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadGrid(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"", "Conta", "Jan/25", "Fev/25"},
		{"", "Receita", "1.000,00", "2.000,50"},
	})

	grid, err := ReadGrid(buf)

	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, "Conta", grid[0][1])
	assert.Equal(t, "1.000,00", grid[1][2])
}

func TestReadGrid_NotAWorkbook(t *testing.T) {
	_, err := ReadGrid(bytes.NewReader([]byte("definitely not a zip")))
	assert.Error(t, err)
}

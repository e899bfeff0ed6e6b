package csv_source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGrid_CommaDelimited(t *testing.T) {
	payload := ",Jan/25,Fev/25\nReceita,\"1.000,00\",\"2.000,50\"\n"

	grid, err := ReadGrid(strings.NewReader(payload))

	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"", "Jan/25", "Fev/25"}, grid[0])
	assert.Equal(t, []string{"Receita", "1.000,00", "2.000,50"}, grid[1])
}

func TestReadGrid_SemicolonDelimited(t *testing.T) {
	// pt-BR exports use semicolons so amounts can keep their decimal commas
	// unquoted.
	payload := ";Jan/25;Fev/25\nReceita;1.000,00;2.000,50\n"

	grid, err := ReadGrid(strings.NewReader(payload))

	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"Receita", "1.000,00", "2.000,50"}, grid[1])
}

func TestReadGrid_PreservesEmptyCellsAndRaggedRows(t *testing.T) {
	payload := "a,b,c\nd,,f\ng\n"

	grid, err := ReadGrid(strings.NewReader(payload))

	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, []string{"d", "", "f"}, grid[1])
	assert.Equal(t, []string{"g"}, grid[2])
}

func TestReadGrid_StripsBOM(t *testing.T) {
	payload := "\xef\xbb\xbfConta,Jan\nReceita,100\n"

	grid, err := ReadGrid(strings.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, "Conta", grid[0][0])
}

func TestReadGrid_Empty(t *testing.T) {
	grid, err := ReadGrid(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, grid)
}

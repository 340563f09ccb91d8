package xlsx_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iyefymov/mailmerge/internal/xlsx"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestOpen(t *testing.T) {
	path := writeWorkbook(t, "EOIs", [][]any{
		{"PI Name", "Nominee name", "Nomination Type"},
		{"X", "Y", "Z"},
		{"Ana", "Bob"}, // short row: missing trailing cell
	})

	src, err := xlsx.Open(path, "EOIs")
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, "EOIs", src.Sheet())
	assert.Equal(t, []string{"PI Name", "Nominee name", "Nomination Type"}, src.Columns())

	records := src.Records()
	require.Len(t, records, 2)
	assert.Equal(t, xlsx.Record{
		"PI Name":         "X",
		"Nominee name":    "Y",
		"Nomination Type": "Z",
	}, records[0])
	assert.Equal(t, "", records[1]["Nomination Type"], "missing cells read as empty strings")
	assert.Equal(t, "Ana", records[1]["PI Name"])
}

func TestOpenDefaultSheet(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]any{
		{"Col"},
		{"value"},
	})

	src, err := xlsx.Open(path, "")
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, "Data", src.Sheet())
	require.Len(t, src.Records(), 1)
	assert.Equal(t, "value", src.Records()[0]["Col"])
}

func TestOpenMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]any{{"Col"}})

	_, err := xlsx.Open(path, "Nope")
	assert.Error(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := xlsx.Open(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	assert.Error(t, err)
}

func TestOpenHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]any{{"A", "B"}})

	src, err := xlsx.Open(path, "Data")
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, []string{"A", "B"}, src.Columns())
	assert.Empty(t, src.Records())
}

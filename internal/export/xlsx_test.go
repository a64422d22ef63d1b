package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestToXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, ToXLSX(sampleReport(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{sheetName}, sheets, "workbook must contain exactly one sheet")

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"table", "column", "type", "nullable", "samples"}, rows[0])
	assert.Equal(t, []string{"USERS", "ID", "NUMBER", "NO", "1, 2"}, rows[1])
	assert.Equal(t, []string{"USERS", "EMAIL", "VARCHAR", "YES", "a@x.com"}, rows[2])
}

package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	data, err := WriteWorkbook([]Sheet{
		{
			Name:   "Pending List",
			Header: []string{"Name", "Department (New)", "Status"},
			Rows:   [][]string{{"Alice", "Sales > Retail", "Pending"}},
		},
		{
			Name:   "All Records",
			Header: []string{"Name", "Department", "CreatedDateTime", "Topic"},
			Rows: [][]string{
				{"Bob", "IT", "2026-01-05", "Safety"},
				{"Carol", "IT", "2026-01-06", "-"},
			},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Pending List", "All Records"}, f.GetSheetList())

	pending, err := f.GetRows("Pending List")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, []string{"Name", "Department (New)", "Status"}, pending[0])
	assert.Equal(t, []string{"Alice", "Sales > Retail", "Pending"}, pending[1])

	records, err := f.GetRows("All Records")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Bob", "IT", "2026-01-05", "Safety"}, records[1])
}

func TestWriteWorkbookEmptySheet(t *testing.T) {
	data, err := WriteWorkbook([]Sheet{
		{Name: "Empty", Header: []string{"Name"}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Empty")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

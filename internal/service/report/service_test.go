package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
)

func TestBuildExport(t *testing.T) {
	pending := []roster.Member{
		{Name: "Alice", Dept: "Sales > Retail"},
		{Name: "Bob", Dept: "IT"},
	}
	records := []roster.Record{
		{Name: "Carol", Department: "IT", CreatedDateTime: "2026-01-05", Topic: "Safety"},
	}

	svc := NewReportService()
	data, err := svc.BuildExport(pending, records)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Pending List", "All Records"}, f.GetSheetList())

	pendingRows, err := f.GetRows("Pending List")
	require.NoError(t, err)
	require.Len(t, pendingRows, 3)
	assert.Equal(t, []string{"Name", "Department (New)", "Status"}, pendingRows[0])
	assert.Equal(t, []string{"Alice", "Sales > Retail", "Pending"}, pendingRows[1])
	assert.Equal(t, []string{"Bob", "IT", "Pending"}, pendingRows[2])

	recordRows, err := f.GetRows("All Records")
	require.NoError(t, err)
	require.Len(t, recordRows, 2)
	assert.Equal(t, []string{"Name", "Department", "CreatedDateTime", "Topic"}, recordRows[0])
	assert.Equal(t, []string{"Carol", "IT", "2026-01-05", "Safety"}, recordRows[1])
}

func TestBuildExportEmpty(t *testing.T) {
	svc := NewReportService()
	data, err := svc.BuildExport(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Pending List", "All Records"}, f.GetSheetList())
}

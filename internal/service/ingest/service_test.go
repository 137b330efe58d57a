package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	"github.com/scg-heim/heim-backend-go/internal/pkg/excel"
)

func buildWorkbook(t *testing.T, headers []string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetList()[0]
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for ri, row := range rows {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Name", "name"},
		{"  Department New ", "departmentnew"},
		{"Created-Date_Time", "createddatetime"},
		{"CREATED\tDATE\nTIME", "createddatetime"},
		{"ชื่อ", "ชื่อ"},
	}
	for _, c := range cases {
		got := normalizeHeader(c.input)
		if got != c.want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestResolveColumnPriority(t *testing.T) {
	row := excel.Row{
		"Dept":           {Kind: excel.KindText, Text: "old"},
		"Department New": {Kind: excel.KindText, Text: "new"},
	}

	// The first candidate that matches any header wins, and an exact
	// normalized match beats a substring match.
	header, ok := resolveColumn(row, "department new", "dept")
	require.True(t, ok)
	assert.Equal(t, "Department New", header)

	header, ok = resolveColumn(row, "department")
	require.True(t, ok)
	assert.Equal(t, "Department New", header, "substring match when no exact header exists")

	_, ok = resolveColumn(row, "topic")
	assert.False(t, ok)
}

func TestDateFromSerial(t *testing.T) {
	assert.Equal(t, "2023-03-15", dateFromSerial(45000))
	assert.Equal(t, "1970-01-01", dateFromSerial(25569))
	assert.Equal(t, "1970-01-02", dateFromSerial(25570.75), "time fraction is truncated")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2023-03-15", formatDate(excel.Cell{Kind: excel.KindNumber, Number: 45000}))
	assert.Equal(t, "2026-01-05", formatDate(excel.Cell{Kind: excel.KindText, Text: "2026-01-05 09:30"}))
	assert.Equal(t, "", formatDate(excel.Cell{Kind: excel.KindText, Text: "   "}))
	assert.Equal(t, "", formatDate(excel.Cell{Kind: excel.KindEmpty}))
}

func TestImportMembers(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"Name", "Department New", "Old Department"},
		[][]interface{}{
			{"Alice", "Sales/Retail", "Legacy"},
			{"", "IT", ""},
			{"Bob", "", "Old/Team"},
		},
	)

	svc := NewIngestService()
	members, err := svc.ImportMembers(data)
	require.NoError(t, err)
	require.Len(t, members, 2, "rows without a name are dropped")

	assert.Equal(t, roster.Member{Name: "Alice", Dept: "Sales > Retail"}, members[0])
	assert.Equal(t, roster.Member{Name: "Bob", Dept: "Old > Team"}, members[1])
}

func TestImportMembersLocalizedHeaders(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"ชื่อ", "แผนก"},
		[][]interface{}{
			{"สมชาย", "Production/Line 1"},
		},
	)

	svc := NewIngestService()
	members, err := svc.ImportMembers(data)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, roster.Member{Name: "สมชาย", Dept: "Production > Line 1"}, members[0])
}

func TestImportRecords(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"Name", "Dept", "CreatedDateTime", "Topic"},
		[][]interface{}{
			{"jane", "Old-IT", 45000, "Safety"},
			{"Bob", "Ops/Field", "2026-01-05 10:00", ""},
			{"", "IT", 45000, "dropped"},
		},
	)

	members := []roster.Member{{Name: "Jane", Dept: "IT"}}

	svc := NewIngestService()
	records, err := svc.ImportRecords(data, members)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Name matched a roster member case-insensitively, so the member's
	// department replaces the record's own cell. The name keeps its raw form.
	assert.Equal(t, roster.Record{
		Name:            "jane",
		Department:      "IT",
		CreatedDateTime: "2023-03-15",
		Topic:           "Safety",
	}, records[0])

	// No roster match: the record keeps its own department, canonicalized,
	// and an empty topic defaults to "-".
	assert.Equal(t, roster.Record{
		Name:            "Bob",
		Department:      "Ops > Field",
		CreatedDateTime: "2026-01-05",
		Topic:           "-",
	}, records[1])
}

func TestImportRecordsDuplicateMemberFirstWins(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"Name", "Dept", "Date"},
		[][]interface{}{
			{"alex", "Own", "2026-02-01"},
		},
	)

	members := []roster.Member{
		{Name: "Alex", Dept: "First"},
		{Name: "ALEX", Dept: "Second"},
	}

	svc := NewIngestService()
	records, err := svc.ImportRecords(data, members)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "First", records[0].Department)
}

func TestImportRecordsMissingDateColumn(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"Name", "Dept"},
		[][]interface{}{
			{"Alice", "IT"},
		},
	)

	svc := NewIngestService()
	records, err := svc.ImportRecords(data, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].CreatedDateTime)
}

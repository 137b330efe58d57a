package ingest

import (
	"strings"
	"time"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	"github.com/scg-heim/heim-backend-go/internal/pkg/excel"
	"github.com/scg-heim/heim-backend-go/internal/pkg/metrics"
)

// Column candidates per source, in priority order. The localized variants
// cover sheets exported with Thai headers.
var (
	memberNameColumns = []string{"name", "ชื่อ"}
	memberDeptPrimary = []string{"department new", "departmentnew"}
	memberDeptFall    = []string{"department", "แผนก"}
	memberDeptOld     = []string{"old department"}

	recordNameColumns  = []string{"name", "ชื่อ"}
	recordDeptColumns  = []string{"dept", "แผนก"}
	recordDateColumns  = []string{"createddatetime", "time", "date"}
	recordTopicColumns = []string{"topic", "subject"}
)

type IngestServiceImpl struct{}

func NewIngestService() roster.IngestService {
	return &IngestServiceImpl{}
}

// ImportMembers parses a members workbook into roster entries. Rows without
// a resolvable non-empty name are dropped; department paths are
// canonicalized to the " > " convention.
func (s *IngestServiceImpl) ImportMembers(data []byte) ([]roster.Member, error) {
	rows, err := excel.Decode(data)
	if err != nil {
		return nil, err
	}

	members := make([]roster.Member, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		name := cellText(row, memberNameColumns...)
		if name == "" {
			skipped++
			continue
		}

		dept := cellText(row, memberDeptPrimary...)
		if dept == "" {
			dept = cellText(row, memberDeptFall...)
		}
		if dept == "" {
			dept = cellText(row, memberDeptOld...)
		}

		members = append(members, roster.Member{
			Name: name,
			Dept: roster.CanonicalDepartment(dept),
		})
	}

	metrics.RowsImported.WithLabelValues("members").Add(float64(len(members)))
	metrics.RowsSkipped.WithLabelValues("members").Add(float64(skipped))
	return members, nil
}

// ImportRecords parses a records workbook. Each record's department is
// resolved against the member list first (case-insensitive name match, first
// occurrence wins); only unmatched names keep their own department cell,
// canonicalized the same way as member departments.
func (s *IngestServiceImpl) ImportRecords(data []byte, members []roster.Member) ([]roster.Record, error) {
	rows, err := excel.Decode(data)
	if err != nil {
		return nil, err
	}

	deptByName := make(map[string]string, len(members))
	for _, m := range members {
		key := strings.ToLower(m.Name)
		if _, ok := deptByName[key]; !ok {
			deptByName[key] = m.Dept
		}
	}

	records := make([]roster.Record, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		name := cellText(row, recordNameColumns...)
		if name == "" {
			skipped++
			continue
		}

		dept, ok := deptByName[strings.ToLower(name)]
		if !ok {
			dept = roster.CanonicalDepartment(cellText(row, recordDeptColumns...))
		}

		topic := cellText(row, recordTopicColumns...)
		if topic == "" {
			topic = "-"
		}

		var date string
		if header, ok := resolveColumn(row, recordDateColumns...); ok {
			date = formatDate(row[header])
		}

		records = append(records, roster.Record{
			Name:            name,
			Department:      dept,
			CreatedDateTime: date,
			Topic:           topic,
		})
	}

	metrics.RowsImported.WithLabelValues("records").Add(float64(len(records)))
	metrics.RowsSkipped.WithLabelValues("records").Add(float64(skipped))
	return records, nil
}

// serialEpochOffset is the number of days between the spreadsheet serial
// baseline (1899-12-30) and the Unix epoch (1970-01-01).
const serialEpochOffset = 25569

// dateFromSerial converts a spreadsheet serial day number to YYYY-MM-DD,
// truncated to the day. Serial 45000 maps to 2023-03-15.
func dateFromSerial(serial float64) string {
	days := int(serial) - serialEpochOffset
	return time.Unix(0, 0).UTC().AddDate(0, 0, days).Format("2006-01-02")
}

// formatDate renders a date cell as YYYY-MM-DD: serial numbers go through
// the epoch conversion, native dates take their calendar date, and free text
// keeps its first whitespace-delimited token.
func formatDate(cell excel.Cell) string {
	switch cell.Kind {
	case excel.KindNumber:
		return dateFromSerial(cell.Number)
	case excel.KindTime:
		return cell.Time.UTC().Format("2006-01-02")
	case excel.KindText:
		fields := strings.Fields(cell.Text)
		if len(fields) == 0 {
			return ""
		}
		return fields[0]
	default:
		return ""
	}
}

package report

import "github.com/scg-heim/heim-backend-go/internal/domain/roster"

// ReportService builds the downloadable workbook: a "Pending List" sheet and
// an "All Records" sheet.
type ReportService interface {
	BuildExport(pending []roster.Member, records []roster.Record) ([]byte, error)
}

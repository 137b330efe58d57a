package report

import (
	"github.com/scg-heim/heim-backend-go/internal/domain/report"
	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	"github.com/scg-heim/heim-backend-go/internal/pkg/excel"
)

type ReportServiceImpl struct{}

func NewReportService() report.ReportService {
	return &ReportServiceImpl{}
}

// BuildExport renders the export workbook: the pending roster members under
// the current filters and the full filtered record list.
func (s *ReportServiceImpl) BuildExport(pending []roster.Member, records []roster.Record) ([]byte, error) {
	pendingRows := make([][]string, 0, len(pending))
	for _, m := range pending {
		pendingRows = append(pendingRows, []string{m.Name, m.Dept, "Pending"})
	}

	recordRows := make([][]string, 0, len(records))
	for _, r := range records {
		recordRows = append(recordRows, []string{r.Name, r.Department, r.CreatedDateTime, r.Topic})
	}

	return excel.WriteWorkbook([]excel.Sheet{
		{
			Name:   "Pending List",
			Header: []string{"Name", "Department (New)", "Status"},
			Rows:   pendingRows,
		},
		{
			Name:   "All Records",
			Header: []string{"Name", "Department", "CreatedDateTime", "Topic"},
			Rows:   recordRows,
		},
	})
}

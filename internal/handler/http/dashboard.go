package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/scg-heim/heim-backend-go/internal/domain/report"
	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	"github.com/scg-heim/heim-backend-go/internal/domain/stats"
	"github.com/scg-heim/heim-backend-go/internal/handler/http/response"
	"github.com/scg-heim/heim-backend-go/internal/pkg/validator"
)

type DashboardHandler interface {
	// GetDashboard returns the full aggregate view for the current filters
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetDepartmentOptions returns the grouped department dropdown
	GetDepartmentOptions(w http.ResponseWriter, r *http.Request)
	// ListRecords returns filtered records, paged
	ListRecords(w http.ResponseWriter, r *http.Request)
	// Export streams the xlsx export for the current filters
	Export(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	statsService  stats.StatsService
	reportService report.ReportService
	store         roster.Store
}

func NewDashboardHandler(statsService stats.StatsService, reportService report.ReportService, store roster.Store) DashboardHandler {
	return &dashboardHandlerImpl{
		statsService:  statsService,
		reportService: reportService,
		store:         store,
	}
}

// parseFilters reads the filter query params. Year defaults to the current
// year, month and dept to their "all" sentinels.
func parseFilters(r *http.Request) (stats.Filters, error) {
	q := r.URL.Query()
	filters := stats.Filters{
		Year:   q.Get("year"),
		Month:  q.Get("month"),
		Dept:   q.Get("dept"),
		Search: q.Get("search"),
	}
	if filters.Year == "" {
		filters.Year = strconv.Itoa(time.Now().Year())
	}
	if filters.Month == "" {
		filters.Month = stats.MonthAll
	}
	if filters.Dept == "" {
		filters.Dept = stats.DeptAll
	}

	var errs validator.ValidationErrors
	if !validator.IsValidYear(filters.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a 4-digit year"})
	}
	if !validator.IsValidMonth(filters.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be ALL or a zero-padded month 01-12"})
	}
	if len(errs) > 0 {
		return stats.Filters{}, errs
	}
	return filters, nil
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	snap := h.store.Current()
	response.Success(w, h.statsService.Aggregate(snap.Records, snap.Members, filters))
}

// GetDepartmentOptions handles GET /dashboard/departments
func (h *dashboardHandlerImpl) GetDepartmentOptions(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Current()
	response.Success(w, h.statsService.DepartmentOptions(snap.Members, snap.Records))
}

// ListRecords handles GET /records
func (h *dashboardHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	page, limit, err := parsePaging(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	snap := h.store.Current()
	aggregates := h.statsService.Aggregate(snap.Records, snap.Members, filters)
	records := aggregates.FilteredRecords

	total := len(records)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	response.SuccessWithMeta(w, records[start:end], &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: int64(total),
		TotalPages: totalPages,
	})
}

func parsePaging(r *http.Request) (page, limit int, err error) {
	page, limit = 1, 50
	q := r.URL.Query()

	var errs validator.ValidationErrors
	if v := q.Get("page"); v != "" {
		if !validator.IsNumeric(v) {
			errs = append(errs, validator.ValidationError{Field: "page", Message: "must be a positive integer"})
		} else {
			page, _ = strconv.Atoi(v)
		}
	}
	if v := q.Get("limit"); v != "" {
		if !validator.IsNumeric(v) {
			errs = append(errs, validator.ValidationError{Field: "limit", Message: "must be a positive integer"})
		} else {
			limit, _ = strconv.Atoi(v)
		}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if len(errs) > 0 {
		return 0, 0, errs
	}
	return page, limit, nil
}

// Export handles GET /export
func (h *dashboardHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	snap := h.store.Current()
	aggregates := h.statsService.Aggregate(snap.Records, snap.Members, filters)

	data, err := h.reportService.BuildExport(aggregates.PendingList, aggregates.FilteredRecords)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="HEIM_Export.xlsx"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	_, _ = w.Write(data)
}

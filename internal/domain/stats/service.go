package stats

import "github.com/scg-heim/heim-backend-go/internal/domain/roster"

// StatsService computes derived views over the dataset.
type StatsService interface {
	// Aggregate is a pure function of its inputs: no side effects, safe to
	// call on every filter change, deterministic for identical inputs.
	Aggregate(records []roster.Record, members []roster.Member, filters Filters) *Aggregates

	// DepartmentOptions builds the grouped department dropdown from every
	// distinct department seen across the roster and the records.
	DepartmentOptions(members []roster.Member, records []roster.Record) []DepartmentGroup
}

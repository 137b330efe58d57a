package stats

import "github.com/scg-heim/heim-backend-go/internal/domain/roster"

// Filter sentinels.
const (
	MonthAll = "ALL"
	DeptAll  = "All"
)

// ========== FILTERS ==========

// Filters is the ephemeral filter state applied to the dataset. Year is a
// 4-digit string, Month a 2-digit string or MonthAll, Dept an exact
// canonical department or DeptAll, Search a case-insensitive substring over
// record names.
type Filters struct {
	Year   string `json:"year"`
	Month  string `json:"month"`
	Dept   string `json:"dept"`
	Search string `json:"search"`
}

// ========== DERIVED AGGREGATES ==========

// DeptStat holds completion figures for one department.
type DeptStat struct {
	Name   string  `json:"name"`
	Total  int     `json:"total"`  // roster members in the department
	Active int     `json:"active"` // distinct members with a record in the year/month window
	Rate   float64 `json:"rate"`   // active/total * 100, 0 when total is 0
}

// LeaderboardEntry is one row of the per-user ranking.
type LeaderboardEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Dept  string `json:"dept"` // "N/A" when the name has no roster entry
}

// Summary mirrors the dashboard KPI cards.
type Summary struct {
	TotalRecords        int     `json:"total_records"`
	Completed           int     `json:"completed"`
	Pending             int     `json:"pending"`
	AveragePerCompleter float64 `json:"average_per_completer"`
	CompletionRate      float64 `json:"completion_rate"`
}

// Aggregates is the full derived view for one (records, members, filters)
// input. It is recomputed as a whole on every filter change, never stored.
type Aggregates struct {
	FilteredRecords []roster.Record    `json:"filtered_records"`
	DeptStats       []DeptStat         `json:"dept_stats"`
	Leaderboard     []LeaderboardEntry `json:"leaderboard"`
	Champion        *LeaderboardEntry  `json:"champion"`
	SpeedStar       *roster.Record     `json:"speed_star"`
	PendingList     []roster.Member    `json:"pending_list"`
	TargetPool      []roster.Member    `json:"target_pool"`
	Summary         Summary            `json:"summary"`
}

// ========== DEPARTMENT OPTIONS ==========

// DepartmentGroup is one group of the department dropdown, keyed by the
// first path segment of hierarchical department names.
type DepartmentGroup struct {
	Group   string   `json:"group"`
	Options []string `json:"options"`
}

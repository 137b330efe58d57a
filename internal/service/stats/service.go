package stats

import (
	"sort"
	"strings"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	"github.com/scg-heim/heim-backend-go/internal/domain/stats"
)

type StatsServiceImpl struct{}

func NewStatsService() stats.StatsService {
	return &StatsServiceImpl{}
}

// Aggregate recomputes every derived view from one consistent snapshot of
// records, members and filters. All outputs are fully sorted so identical
// inputs always produce identical results.
func (s *StatsServiceImpl) Aggregate(records []roster.Record, members []roster.Member, filters stats.Filters) *stats.Aggregates {
	filtered := filterRecords(records, filters, true)
	effective := effectiveRoster(members, records)

	deptByName := make(map[string]string, len(effective))
	for _, m := range effective {
		if _, ok := deptByName[m.Name]; !ok {
			deptByName[m.Name] = m.Dept
		}
	}

	pool := targetPool(effective, filters.Dept)
	pending := pendingMembers(pool, filtered)
	deptStats := departmentStats(records, effective, deptByName, filters)
	leaderboard := buildLeaderboard(filtered, deptByName)

	var champion *stats.LeaderboardEntry
	if len(leaderboard) > 0 {
		champion = &leaderboard[0]
	}

	var speedStar *roster.Record
	if len(filtered) > 0 {
		byDate := make([]roster.Record, len(filtered))
		copy(byDate, filtered)
		sort.SliceStable(byDate, func(i, j int) bool {
			return byDate[i].CreatedDateTime < byDate[j].CreatedDateTime
		})
		speedStar = &byDate[0]
	}

	completed := len(pool) - len(pending)
	summary := stats.Summary{
		TotalRecords: len(filtered),
		Completed:    completed,
		Pending:      len(pending),
	}
	if completed > 0 {
		summary.AveragePerCompleter = float64(len(filtered)) / float64(completed)
	}
	if len(pool) > 0 {
		summary.CompletionRate = float64(completed) / float64(len(pool)) * 100
	}

	return &stats.Aggregates{
		FilteredRecords: filtered,
		DeptStats:       deptStats,
		Leaderboard:     leaderboard,
		Champion:        champion,
		SpeedStar:       speedStar,
		PendingList:     pending,
		TargetPool:      pool,
		Summary:         summary,
	}
}

// filterRecords applies the filter criteria. When applyDeptSearch is false
// only the year/month window is checked, which is how department activity is
// counted so department comparison is unaffected by dept/search narrowing.
func filterRecords(records []roster.Record, f stats.Filters, applyDeptSearch bool) []roster.Record {
	search := strings.ToLower(f.Search)
	out := make([]roster.Record, 0, len(records))
	for _, r := range records {
		if r.CreatedDateTime == "" {
			continue
		}
		if !strings.HasPrefix(r.CreatedDateTime, f.Year) {
			continue
		}
		if f.Month != stats.MonthAll && !strings.Contains(r.CreatedDateTime, "-"+f.Month+"-") {
			continue
		}
		if applyDeptSearch {
			if f.Dept != stats.DeptAll && r.Department != f.Dept {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// effectiveRoster returns the uploaded roster, or a roster synthesized from
// distinct record names (first occurrence wins) when none was uploaded, so
// department statistics stay computable.
func effectiveRoster(members []roster.Member, records []roster.Record) []roster.Member {
	if len(members) > 0 || len(records) == 0 {
		return members
	}
	seen := make(map[string]bool, len(records))
	synthesized := make([]roster.Member, 0, len(records))
	for _, r := range records {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		synthesized = append(synthesized, roster.Member{Name: r.Name, Dept: r.Department})
	}
	return synthesized
}

// targetPool narrows the roster by the dept criterion only; year, month and
// search never change roster membership.
func targetPool(members []roster.Member, dept string) []roster.Member {
	pool := make([]roster.Member, 0, len(members))
	for _, m := range members {
		if dept == stats.DeptAll || m.Dept == dept {
			pool = append(pool, m)
		}
	}
	return pool
}

func pendingMembers(pool []roster.Member, filtered []roster.Record) []roster.Member {
	active := make(map[string]bool, len(filtered))
	for _, r := range filtered {
		active[r.Name] = true
	}
	pending := make([]roster.Member, 0, len(pool))
	for _, m := range pool {
		if !active[m.Name] {
			pending = append(pending, m)
		}
	}
	return pending
}

// departmentStats counts, per department, total roster members and distinct
// members with at least one record inside the year/month window. Sorted by
// rate descending, name ascending on ties.
func departmentStats(records []roster.Record, members []roster.Member, deptByName map[string]string, f stats.Filters) []stats.DeptStat {
	totals := make(map[string]int, len(members))
	for _, m := range members {
		totals[m.Dept]++
	}

	active := make(map[string]int, len(totals))
	counted := make(map[string]bool, len(members))
	for _, r := range filterRecords(records, f, false) {
		dept, ok := deptByName[r.Name]
		if !ok || counted[r.Name] {
			continue
		}
		counted[r.Name] = true
		if _, ok := totals[dept]; ok {
			active[dept]++
		}
	}

	out := make([]stats.DeptStat, 0, len(totals))
	for dept, total := range totals {
		stat := stats.DeptStat{Name: dept, Total: total, Active: active[dept]}
		if total > 0 {
			stat.Rate = float64(stat.Active) / float64(total) * 100
		}
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rate != out[j].Rate {
			return out[i].Rate > out[j].Rate
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// buildLeaderboard ranks names by filtered record count, descending, name
// ascending on ties. Department comes from the roster lookup or "N/A".
func buildLeaderboard(filtered []roster.Record, deptByName map[string]string) []stats.LeaderboardEntry {
	counts := make(map[string]int, len(filtered))
	for _, r := range filtered {
		counts[r.Name]++
	}

	entries := make([]stats.LeaderboardEntry, 0, len(counts))
	for name, count := range counts {
		dept, ok := deptByName[name]
		if !ok {
			dept = "N/A"
		}
		entries = append(entries, stats.LeaderboardEntry{Name: name, Count: count, Dept: dept})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// DepartmentOptions groups every distinct department for the filter
// dropdown: hierarchical names group under their first path segment,
// flat names under "Others". The "All" group always comes first.
func (s *StatsServiceImpl) DepartmentOptions(members []roster.Member, records []roster.Record) []stats.DepartmentGroup {
	seen := make(map[string]bool)
	depts := make([]string, 0)
	add := func(d string) {
		if d != "" && !seen[d] {
			seen[d] = true
			depts = append(depts, d)
		}
	}
	for _, m := range members {
		add(m.Dept)
	}
	for _, r := range records {
		add(r.Department)
	}
	sort.Strings(depts)

	grouped := make(map[string][]string)
	for _, d := range depts {
		group := "Others"
		if strings.Contains(d, " > ") {
			group = strings.TrimSpace(strings.SplitN(d, " > ", 2)[0])
		} else if strings.Contains(d, "/") {
			group = strings.TrimSpace(strings.SplitN(d, "/", 2)[0])
		}
		grouped[group] = append(grouped[group], d)
	}

	names := make([]string, 0, len(grouped))
	for g := range grouped {
		if g != "Others" {
			names = append(names, g)
		}
	}
	sort.Strings(names)
	if len(grouped["Others"]) > 0 {
		names = append(names, "Others")
	}

	out := make([]stats.DepartmentGroup, 0, len(names)+1)
	out = append(out, stats.DepartmentGroup{Group: stats.DeptAll, Options: []string{stats.DeptAll}})
	for _, g := range names {
		out = append(out, stats.DepartmentGroup{Group: g, Options: grouped[g]})
	}
	return out
}

package roster

import (
	"regexp"
	"strings"
)

// Member represents a roster entry: a person and their current department.
// JSON keys match the persisted snapshot format.
type Member struct {
	Name string `json:"name"`
	Dept string `json:"dept"`
}

// Record represents a single logged training/activity event. Field names
// mirror the upstream sheet columns and the persisted snapshot format.
type Record struct {
	Name            string `json:"Name"`
	Department      string `json:"Department"`
	CreatedDateTime string `json:"CreatedDateTime"` // YYYY-MM-DD
	Topic           string `json:"Topic"`
}

// Snapshot is the full in-memory dataset. Snapshots are immutable once
// published: writers build a new Snapshot and replace the reference, so
// readers always see a consistent members/records pairing.
type Snapshot struct {
	Members []Member
	Records []Record
}

var deptSeparators = regexp.MustCompile(`[\\/]+`)

// CanonicalDepartment normalizes a department path to the "A > B" convention:
// runs of "/" or "\" become a single " > " delimiter with surrounding
// whitespace collapsed. The function is idempotent.
func CanonicalDepartment(dept string) string {
	dept = strings.TrimSpace(dept)
	if !strings.ContainsAny(dept, `/\`) {
		return dept
	}

	parts := deptSeparators.Split(dept, -1)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, " > ")
}

package roster

import "context"

// Snapshot keys are fixed so older exports of the same dataset stay readable.
// Values are plain JSON arrays of Member / Record.
const (
	KeyMembers = "scg_heim_members_v9"
	KeyRecords = "scg_heim_records_v9"
)

// SnapshotRepository persists the last successfully parsed dataset so a
// failed sync can fall back to it.
type SnapshotRepository interface {
	SaveMembers(ctx context.Context, members []Member) error
	LoadMembers(ctx context.Context) ([]Member, error)
	SaveRecords(ctx context.Context, records []Record) error
	LoadRecords(ctx context.Context) ([]Record, error)
}

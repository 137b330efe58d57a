package roster

import "context"

// SyncOutcome names the terminal state of a sync run.
type SyncOutcome string

const (
	OutcomeFresh SyncOutcome = "fresh" // both sources fetched and parsed
	OutcomeCache SyncOutcome = "cache" // network path failed, persisted snapshot restored
	OutcomeEmpty SyncOutcome = "empty" // network path failed and no snapshot existed
)

// SyncResult reports how a sync run terminated. Celebrate is set only for
// explicit (non-auto) runs that produced fresh data, so the caller can show
// success feedback.
type SyncResult struct {
	Outcome   SyncOutcome `json:"outcome"`
	Members   int         `json:"members"`
	Records   int         `json:"records"`
	Celebrate bool        `json:"celebrate"`
}

// IngestService turns raw workbook bytes into normalized entities.
type IngestService interface {
	// ImportMembers parses a members workbook. Rows without a resolvable,
	// non-empty name are dropped.
	ImportMembers(data []byte) ([]Member, error)

	// ImportRecords parses a records workbook, resolving each record's
	// department against the given member list (case-insensitive name match,
	// first occurrence wins) before falling back to the record's own
	// department cell.
	ImportRecords(data []byte, members []Member) ([]Record, error)
}

// SyncService fetches both remote sources, reconciles them, and keeps the
// live snapshot and its persisted copy in step.
type SyncService interface {
	// Sync runs one sync pass. It never returns a fetch or decode error:
	// those resolve to a cache or empty outcome. The only error it returns
	// is ErrSyncInProgress when another run holds the lock.
	Sync(ctx context.Context, auto bool) (*SyncResult, error)

	// Restore loads the persisted snapshot into the live store, for cold
	// starts before the first sync completes.
	Restore(ctx context.Context) (*SyncResult, error)
}

// Store holds the live dataset snapshot. Replace semantics only: in-flight
// readers keep the snapshot they already hold.
type Store interface {
	Current() *Snapshot
	Replace(snap *Snapshot)
	ReplaceMembers(members []Member)
	ReplaceRecords(records []Record)
}

// Fetcher retrieves the raw workbook bytes for a source ID, trying fallback
// transports in order. First success wins.
type Fetcher interface {
	Fetch(ctx context.Context, sourceID string) ([]byte, error)
}

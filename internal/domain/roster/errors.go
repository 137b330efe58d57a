package roster

import "errors"

var (
	ErrSourceUnavailable = errors.New("source could not be fetched through any transport")
	ErrDecode            = errors.New("spreadsheet data could not be decoded")
	ErrSnapshotNotFound  = errors.New("no persisted snapshot for key")
	ErrSyncInProgress    = errors.New("a sync is already running")
)

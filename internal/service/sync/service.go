package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	"github.com/scg-heim/heim-backend-go/internal/pkg/metrics"
)

// SyncServiceImpl pulls both remote sources, parses members before records
// (records need the member list as reconciliation context), publishes the
// snapshot and persists it. Every failure on the network path terminates in
// a cache or empty outcome, never in an error to the caller.
type SyncServiceImpl struct {
	fetcher   roster.Fetcher
	ingest    roster.IngestService
	store     roster.Store
	snapshots roster.SnapshotRepository

	membersSourceID string
	recordsSourceID string
	deadline        time.Duration

	mu sync.Mutex // held for the duration of one run
}

func NewSyncService(
	fetcher roster.Fetcher,
	ingest roster.IngestService,
	store roster.Store,
	snapshots roster.SnapshotRepository,
	membersSourceID, recordsSourceID string,
	deadline time.Duration,
) *SyncServiceImpl {
	return &SyncServiceImpl{
		fetcher:         fetcher,
		ingest:          ingest,
		store:           store,
		snapshots:       snapshots,
		membersSourceID: membersSourceID,
		recordsSourceID: recordsSourceID,
		deadline:        deadline,
	}
}

// Sync runs one pass. Returns roster.ErrSyncInProgress when another run
// holds the lock; auto triggers are expected to just skip in that case.
func (s *SyncServiceImpl) Sync(ctx context.Context, auto bool) (*roster.SyncResult, error) {
	if !s.mu.TryLock() {
		return nil, roster.ErrSyncInProgress
	}
	defer s.mu.Unlock()

	log := slog.With("run_id", uuid.New().String(), "auto", auto)
	log.Info("sync started")

	fetchCtx := ctx
	if s.deadline > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.deadline)
		defer cancel()
	}

	var memberData, recordData []byte
	g, gCtx := errgroup.WithContext(fetchCtx)
	g.Go(func() error {
		data, err := s.fetcher.Fetch(gCtx, s.membersSourceID)
		memberData = data
		return err
	})
	g.Go(func() error {
		data, err := s.fetcher.Fetch(gCtx, s.recordsSourceID)
		recordData = data
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn("fetch failed, falling back to persisted snapshot", "error", err)
		return s.fallback(ctx)
	}

	// Members must finish parsing before records: record normalization
	// resolves departments through the member list.
	members, err := s.ingest.ImportMembers(memberData)
	if err != nil {
		log.Warn("members decode failed, falling back to persisted snapshot", "error", err)
		return s.fallback(ctx)
	}
	records, err := s.ingest.ImportRecords(recordData, members)
	if err != nil {
		log.Warn("records decode failed, falling back to persisted snapshot", "error", err)
		return s.fallback(ctx)
	}

	s.store.Replace(&roster.Snapshot{Members: members, Records: records})

	// Persisting is best effort: the fresh data is already live.
	if err := s.snapshots.SaveMembers(ctx, members); err != nil {
		log.Warn("failed to persist members snapshot", "error", err)
	}
	if err := s.snapshots.SaveRecords(ctx, records); err != nil {
		log.Warn("failed to persist records snapshot", "error", err)
	}

	log.Info("sync completed", "outcome", roster.OutcomeFresh,
		"members", len(members), "records", len(records))
	metrics.SyncRuns.WithLabelValues(string(roster.OutcomeFresh)).Inc()

	return &roster.SyncResult{
		Outcome:   roster.OutcomeFresh,
		Members:   len(members),
		Records:   len(records),
		Celebrate: !auto,
	}, nil
}

// Restore loads the persisted snapshot into the live store. Used on cold
// start, before the first sync has a chance to complete.
func (s *SyncServiceImpl) Restore(ctx context.Context) (*roster.SyncResult, error) {
	return s.fallback(ctx)
}

// fallback resolves a failed network path: restore the persisted snapshot
// when one exists, otherwise report the empty outcome and leave whatever the
// store currently holds untouched.
func (s *SyncServiceImpl) fallback(ctx context.Context) (*roster.SyncResult, error) {
	members, mErr := s.snapshots.LoadMembers(ctx)
	records, rErr := s.snapshots.LoadRecords(ctx)
	if mErr != nil || rErr != nil {
		metrics.SyncRuns.WithLabelValues(string(roster.OutcomeEmpty)).Inc()
		return &roster.SyncResult{Outcome: roster.OutcomeEmpty}, nil
	}

	s.store.Replace(&roster.Snapshot{Members: members, Records: records})
	metrics.SyncRuns.WithLabelValues(string(roster.OutcomeCache)).Inc()
	return &roster.SyncResult{
		Outcome: roster.OutcomeCache,
		Members: len(members),
		Records: len(records),
	}, nil
}

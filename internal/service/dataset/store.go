package dataset

import (
	"sync/atomic"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
)

// StoreImpl holds the live dataset behind an atomic pointer. Writers (the
// sync orchestrator and the file-import path, never concurrent with each
// other) publish a whole new Snapshot; readers keep whichever snapshot they
// loaded, so they never observe a half-updated pairing.
type StoreImpl struct {
	snap atomic.Pointer[roster.Snapshot]
}

func NewStore() *StoreImpl {
	s := &StoreImpl{}
	s.snap.Store(&roster.Snapshot{})
	return s
}

func (s *StoreImpl) Current() *roster.Snapshot {
	return s.snap.Load()
}

func (s *StoreImpl) Replace(snap *roster.Snapshot) {
	if snap == nil {
		snap = &roster.Snapshot{}
	}
	s.snap.Store(snap)
}

// ReplaceMembers publishes a new snapshot with the given members and the
// current records.
func (s *StoreImpl) ReplaceMembers(members []roster.Member) {
	cur := s.Current()
	s.snap.Store(&roster.Snapshot{Members: members, Records: cur.Records})
}

// ReplaceRecords publishes a new snapshot with the given records and the
// current members.
func (s *StoreImpl) ReplaceRecords(records []roster.Record) {
	cur := s.Current()
	s.snap.Store(&roster.Snapshot{Members: cur.Members, Records: records})
}

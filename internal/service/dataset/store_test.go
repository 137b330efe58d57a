package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
)

func TestStoreStartsEmpty(t *testing.T) {
	s := NewStore()
	snap := s.Current()
	require.NotNil(t, snap)
	assert.Empty(t, snap.Members)
	assert.Empty(t, snap.Records)
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()

	snap := &roster.Snapshot{
		Members: []roster.Member{{Name: "A", Dept: "X"}},
		Records: []roster.Record{{Name: "A", CreatedDateTime: "2026-01-05"}},
	}
	s.Replace(snap)
	assert.Same(t, snap, s.Current())

	// Readers holding the old snapshot are unaffected by a replace.
	old := s.Current()
	s.Replace(&roster.Snapshot{})
	require.Len(t, old.Members, 1)
	assert.Empty(t, s.Current().Members)
}

func TestStoreReplaceNil(t *testing.T) {
	s := NewStore()
	s.Replace(nil)
	require.NotNil(t, s.Current())
}

func TestStoreReplaceMembersKeepsRecords(t *testing.T) {
	s := NewStore()
	s.Replace(&roster.Snapshot{
		Members: []roster.Member{{Name: "Old", Dept: "X"}},
		Records: []roster.Record{{Name: "Old", CreatedDateTime: "2026-01-05"}},
	})

	s.ReplaceMembers([]roster.Member{{Name: "New", Dept: "Y"}})

	snap := s.Current()
	require.Len(t, snap.Members, 1)
	assert.Equal(t, "New", snap.Members[0].Name)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "Old", snap.Records[0].Name)
}

func TestStoreReplaceRecordsKeepsMembers(t *testing.T) {
	s := NewStore()
	s.Replace(&roster.Snapshot{
		Members: []roster.Member{{Name: "Keep", Dept: "X"}},
	})

	s.ReplaceRecords([]roster.Record{{Name: "Fresh", CreatedDateTime: "2026-02-01"}})

	snap := s.Current()
	require.Len(t, snap.Members, 1)
	assert.Equal(t, "Keep", snap.Members[0].Name)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "Fresh", snap.Records[0].Name)
}

func TestDemoSnapshot(t *testing.T) {
	snap := DemoSnapshot()
	require.Len(t, snap.Members, 50)
	require.Len(t, snap.Records, 150)

	depts := make(map[string]bool)
	for _, m := range snap.Members {
		depts[m.Dept] = true
	}
	assert.Len(t, depts, 5)

	for _, r := range snap.Records {
		assert.Equal(t, "2026-01-15", r.CreatedDateTime)
	}

	// Deterministic: two builds are identical.
	assert.Equal(t, snap, DemoSnapshot())
}

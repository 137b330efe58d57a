package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	"github.com/scg-heim/heim-backend-go/internal/pkg/database"
)

type snapshotRepository struct {
	db *database.DB
}

// NewSnapshotRepository creates the pgx-backed snapshot store. Payloads are
// the plain JSON arrays of the entity shapes, under the fixed dataset keys.
func NewSnapshotRepository(db *database.DB) roster.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS dataset_snapshots (
			key        TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure snapshot schema: %w", err)
	}
	return nil
}

func (r *snapshotRepository) SaveMembers(ctx context.Context, members []roster.Member) error {
	if members == nil {
		members = []roster.Member{}
	}
	return r.set(ctx, roster.KeyMembers, members)
}

func (r *snapshotRepository) LoadMembers(ctx context.Context) ([]roster.Member, error) {
	var members []roster.Member
	if err := r.get(ctx, roster.KeyMembers, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *snapshotRepository) SaveRecords(ctx context.Context, records []roster.Record) error {
	if records == nil {
		records = []roster.Record{}
	}
	return r.set(ctx, roster.KeyRecords, records)
}

func (r *snapshotRepository) LoadRecords(ctx context.Context) ([]roster.Record, error) {
	var records []roster.Record
	if err := r.get(ctx, roster.KeyRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *snapshotRepository) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", key, err)
	}

	query := `
		INSERT INTO dataset_snapshots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, key, string(payload)); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

func (r *snapshotRepository) get(ctx context.Context, key string, out interface{}) error {
	var payload string
	err := r.db.QueryRow(ctx, `SELECT payload FROM dataset_snapshots WHERE key = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", roster.ErrSnapshotNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot %s: %w", key, err)
	}
	return nil
}

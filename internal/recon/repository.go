package recon

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists nightly reconciliation snapshots.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repo.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// SaveSnapshot stores the generated report, replacing any earlier run for
// the same date.
func (r *Repository) SaveSnapshot(ctx context.Context, report Report) (Snapshot, error) {
	if r == nil {
		return Snapshot{}, errors.New("recon repository not initialised")
	}
	payload, err := json.Marshal(report.Rows)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		ID:            uuid.NewString(),
		Date:          report.Date,
		MismatchCount: report.MismatchCount,
		Rows:          report.Rows,
		GeneratedAt:   report.GeneratedAt,
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO recon_snapshots (id, snapshot_date, mismatch_count, payload, generated_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (snapshot_date) DO UPDATE SET id=EXCLUDED.id, mismatch_count=EXCLUDED.mismatch_count, payload=EXCLUDED.payload, generated_at=EXCLUDED.generated_at`,
		snap.ID, snap.Date, snap.MismatchCount, payload, snap.GeneratedAt)
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// ListSnapshots returns recent snapshots, newest date first, without payloads.
func (r *Repository) ListSnapshots(ctx context.Context, limit int) ([]Snapshot, error) {
	if r == nil {
		return nil, errors.New("recon repository not initialised")
	}
	if limit <= 0 {
		limit = 30
	}
	rows, err := r.pool.Query(ctx, `SELECT id, snapshot_date, mismatch_count, generated_at
FROM recon_snapshots ORDER BY snapshot_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	snaps := []Snapshot{}
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.Date, &s.MismatchCount, &s.GeneratedAt); err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// GetSnapshot loads one snapshot with its payload.
func (r *Repository) GetSnapshot(ctx context.Context, id string) (Snapshot, error) {
	if r == nil {
		return Snapshot{}, errors.New("recon repository not initialised")
	}
	var s Snapshot
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT id, snapshot_date, mismatch_count, payload, generated_at
FROM recon_snapshots WHERE id=$1`, id).
		Scan(&s.ID, &s.Date, &s.MismatchCount, &payload, &s.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return Snapshot{}, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &s.Rows); err != nil {
			return Snapshot{}, err
		}
	}
	return s, nil
}

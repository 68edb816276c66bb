package stockledger

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists stock entries in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert stores an entry.
func (r *Repository) Insert(ctx context.Context, entry Entry) error {
	if r == nil {
		return errors.New("stockledger repository not initialised")
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO stock_entries (id, kind, entry_date, item_id, item_name, qty, unit, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())`,
		entry.ID, string(entry.Kind), entry.Date, entry.ItemID, entry.ItemName, entry.Qty, string(entry.Unit))
	return err
}

// Get fetches an entry by id.
func (r *Repository) Get(ctx context.Context, id string) (Entry, error) {
	if r == nil {
		return Entry{}, errors.New("stockledger repository not initialised")
	}
	var e Entry
	err := r.pool.QueryRow(ctx, `SELECT id, kind, entry_date, item_id, item_name, qty, unit, created_at, updated_at
FROM stock_entries WHERE id=$1`, id).
		Scan(&e.ID, &e.Kind, &e.Date, &e.ItemID, &e.ItemName, &e.Qty, &e.Unit, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrEntryNotFound
	}
	return e, err
}

// Update replaces the mutable fields of an entry.
func (r *Repository) Update(ctx context.Context, entry Entry) error {
	if r == nil {
		return errors.New("stockledger repository not initialised")
	}
	tag, err := r.pool.Exec(ctx, `UPDATE stock_entries SET item_id=$2, item_name=$3, qty=$4, unit=$5, entry_date=$6, updated_at=NOW() WHERE id=$1`,
		entry.ID, entry.ItemID, entry.ItemName, entry.Qty, string(entry.Unit), entry.Date)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Delete removes an entry by id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if r == nil {
		return errors.New("stockledger repository not initialised")
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM stock_entries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ListByDate bulk-reads all entries of one kind for a date, in insertion
// order so a later duplicate for the same (item, unit) observably wins.
func (r *Repository) ListByDate(ctx context.Context, kind Kind, date string) ([]Entry, error) {
	if r == nil {
		return nil, errors.New("stockledger repository not initialised")
	}
	rows, err := r.pool.Query(ctx, `SELECT id, kind, entry_date, item_id, item_name, qty, unit, created_at, updated_at
FROM stock_entries WHERE kind=$1 AND entry_date=$2 ORDER BY created_at ASC, id ASC`, string(kind), date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Date, &e.ItemID, &e.ItemName, &e.Qty, &e.Unit, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

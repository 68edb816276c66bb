package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads orders from PostgreSQL. The reconciliation engine does no
// server-side filtering by date; it fetches in bulk and filters client-side.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListAll returns every order, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]Order, error) {
	if r == nil {
		return nil, errors.New("orders repository not initialised")
	}
	rows, err := r.pool.Query(ctx, `SELECT id, order_date, items, created_at FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.Items, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

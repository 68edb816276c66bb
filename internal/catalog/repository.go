package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists catalog items in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const uniqueViolation = "23505"

// Insert stores a new item.
func (r *Repository) Insert(ctx context.Context, item Item) error {
	if r == nil {
		return errors.New("catalog repository not initialised")
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO items (id, name, sale_type, weight_per_pcs, price_per_kg, price_per_pcs, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,NOW(),NOW())`,
		item.ID, item.Name, string(item.SaleType), item.WeightPerPCS, item.PricePerKG, item.PricePerPCS)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateName
	}
	return err
}

// Get fetches an item by id.
func (r *Repository) Get(ctx context.Context, id string) (Item, error) {
	if r == nil {
		return Item{}, errors.New("catalog repository not initialised")
	}
	var item Item
	err := r.pool.QueryRow(ctx, `SELECT id, name, sale_type, weight_per_pcs, price_per_kg, price_per_pcs, created_at, updated_at
FROM items WHERE id=$1`, id).
		Scan(&item.ID, &item.Name, &item.SaleType, &item.WeightPerPCS, &item.PricePerKG, &item.PricePerPCS, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	return item, err
}

// List returns all items ordered by name.
func (r *Repository) List(ctx context.Context) ([]Item, error) {
	if r == nil {
		return nil, errors.New("catalog repository not initialised")
	}
	rows, err := r.pool.Query(ctx, `SELECT id, name, sale_type, weight_per_pcs, price_per_kg, price_per_pcs, created_at, updated_at
FROM items ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.SaleType, &item.WeightPerPCS, &item.PricePerKG, &item.PricePerPCS, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

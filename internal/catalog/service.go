package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// RepositoryPort abstracts persistence for the service.
type RepositoryPort interface {
	Insert(ctx context.Context, item Item) error
	Get(ctx context.Context, id string) (Item, error)
	List(ctx context.Context) ([]Item, error)
}

// Service coordinates catalog reads and writes.
type Service struct {
	repo  RepositoryPort
	cache *Cache
}

// NewService builds Service.
func NewService(repo RepositoryPort, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// CreateItemInput captures item creation input.
type CreateItemInput struct {
	Name         string
	SaleType     SaleType
	WeightPerPCS *float64
	PricePerKG   *float64
	PricePerPCS  *float64
}

// Validate ensures correctness.
func (in CreateItemInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if in.SaleType != SaleTypePerWeight && in.SaleType != SaleTypePerPiece {
		return ErrInvalidSaleType
	}
	if in.SaleType == SaleTypePerPiece && (in.WeightPerPCS == nil || *in.WeightPerPCS <= 0) {
		return ErrWeightPerPCSRequired
	}
	return nil
}

// Create validates and stores an item, invalidating cached reads.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (Item, error) {
	if err := input.Validate(); err != nil {
		return Item{}, err
	}
	item := Item{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		SaleType:     input.SaleType,
		WeightPerPCS: input.WeightPerPCS,
		PricePerKG:   input.PricePerKG,
		PricePerPCS:  input.PricePerPCS,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return Item{}, err
	}
	_ = s.cache.Bump(ctx)
	return item, nil
}

// Get fetches an item by id.
func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	return s.repo.Get(ctx, id)
}

// List returns all items, served from cache when warm.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	key, err := s.cache.BuildKey(ctx, "items")
	if err != nil {
		return s.repo.List(ctx)
	}
	var items []Item
	err = s.cache.FetchJSON(ctx, key, &items, func(ctx context.Context) (interface{}, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

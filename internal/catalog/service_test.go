package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	items     map[string]Item
	listCalls int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[string]Item)}
}

func (r *memoryRepo) Insert(ctx context.Context, item Item) error {
	for _, existing := range r.items {
		if existing.Name == item.Name {
			return ErrDuplicateName
		}
	}
	r.items[item.ID] = item
	return nil
}

func (r *memoryRepo) Get(ctx context.Context, id string) (Item, error) {
	item, ok := r.items[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]Item, error) {
	r.listCalls++
	result := []Item{}
	for _, item := range r.items {
		result = append(result, item)
	}
	return result, nil
}

func testCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)

	_, err := svc.Create(context.Background(), CreateItemInput{Name: " ", SaleType: SaleTypePerWeight})
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(context.Background(), CreateItemInput{Name: "Tilapia", SaleType: "BY_DOZEN"})
	require.ErrorIs(t, err, ErrInvalidSaleType)

	_, err = svc.Create(context.Background(), CreateItemInput{Name: "Tilapia", SaleType: SaleTypePerPiece})
	require.ErrorIs(t, err, ErrWeightPerPCSRequired)

	zero := 0.0
	_, err = svc.Create(context.Background(), CreateItemInput{Name: "Tilapia", SaleType: SaleTypePerPiece, WeightPerPCS: &zero})
	require.ErrorIs(t, err, ErrWeightPerPCSRequired)
}

func TestServiceCreatePerPiece(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, testCache(t))

	wpp := 0.2
	item, err := svc.Create(context.Background(), CreateItemInput{Name: "Tilapia", SaleType: SaleTypePerPiece, WeightPerPCS: &wpp})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.Equal(t, "PCS", item.DefaultUnit())
}

func TestServiceListUsesCache(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, testCache(t))

	_, err := svc.Create(context.Background(), CreateItemInput{Name: "Catfish", SaleType: SaleTypePerWeight})
	require.NoError(t, err)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, 1, repo.listCalls)
}

func TestServiceCreateBumpsCache(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, testCache(t))

	_, err := svc.Create(context.Background(), CreateItemInput{Name: "Catfish", SaleType: SaleTypePerWeight})
	require.NoError(t, err)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = svc.Create(context.Background(), CreateItemInput{Name: "Prawn", SaleType: SaleTypePerWeight})
	require.NoError(t, err)

	items, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestServiceCreateDuplicate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, testCache(t))

	_, err := svc.Create(context.Background(), CreateItemInput{Name: "Catfish", SaleType: SaleTypePerWeight})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateItemInput{Name: "Catfish", SaleType: SaleTypePerWeight})
	require.ErrorIs(t, err, ErrDuplicateName)
}

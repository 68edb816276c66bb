package recon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arus-retail/arus-retail/internal/orders"
	"github.com/arus-retail/arus-retail/internal/stockledger"
)

// OrderSource supplies the full order collection. The service filters by
// date itself; the store offers no server-side filtering.
type OrderSource interface {
	ListAll(ctx context.Context) ([]orders.Order, error)
}

// LedgerSource supplies opening and closing stock entries for a date.
type LedgerSource interface {
	ListByDate(ctx context.Context, kind stockledger.Kind, date string) ([]stockledger.Entry, error)
}

// Service runs reconciliation for a business date. Every invocation is a
// fresh, complete, idempotent computation over freshly fetched inputs: no
// cache, no invalidation, no retry. A fetch failure fails the generation so
// no stale report is ever shown.
type Service struct {
	orderSource  OrderSource
	ledgerSource LedgerSource
	now          func() time.Time
}

// NewService builds the service.
func NewService(orderSource OrderSource, ledgerSource LedgerSource) *Service {
	return &Service{orderSource: orderSource, ledgerSource: ledgerSource, now: time.Now}
}

// Generate fetches orders and ledger entries for the date, aggregates sales
// and builds the reconciliation report.
func (s *Service) Generate(ctx context.Context, date string) (Report, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return Report{}, ErrDateRequired
	}
	allOrders, err := s.orderSource.ListAll(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("recon: fetch orders: %w", err)
	}
	opening, err := s.ledgerSource.ListByDate(ctx, stockledger.KindOpening, date)
	if err != nil {
		return Report{}, fmt.Errorf("recon: fetch opening stock: %w", err)
	}
	closing, err := s.ledgerSource.ListByDate(ctx, stockledger.KindClosing, date)
	if err != nil {
		return Report{}, fmt.Errorf("recon: fetch closing stock: %w", err)
	}

	sold := AggregateSales(allOrders, date)
	rows := BuildReport(opening, closing, sold)
	return Report{
		Date:          date,
		Rows:          rows,
		MismatchCount: MismatchCount(rows),
		GeneratedAt:   s.now().UTC(),
	}, nil
}

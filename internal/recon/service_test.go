package recon

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arus-retail/arus-retail/internal/orders"
	"github.com/arus-retail/arus-retail/internal/stockledger"
)

type fakeOrderSource struct {
	orders []orders.Order
	err    error
}

func (f *fakeOrderSource) ListAll(ctx context.Context) ([]orders.Order, error) {
	return f.orders, f.err
}

type fakeLedgerSource struct {
	opening []stockledger.Entry
	closing []stockledger.Entry
	err     error
}

func (f *fakeLedgerSource) ListByDate(ctx context.Context, kind stockledger.Kind, date string) ([]stockledger.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if kind == stockledger.KindOpening {
		return f.opening, nil
	}
	return f.closing, nil
}

func TestServiceGenerate(t *testing.T) {
	orderSource := &fakeOrderSource{orders: []orders.Order{
		{OrderDate: "2026-08-29", Items: json.RawMessage(`[{"itemName":"Tilapia","liveWeight":4,"itemSaleType":"PER_WEIGHT"}]`)},
	}}
	ledgerSource := &fakeLedgerSource{
		opening: []stockledger.Entry{{ItemID: "i1", ItemName: "Tilapia", Qty: 10, Unit: stockledger.UnitKG}},
		closing: []stockledger.Entry{{ItemID: "i1", ItemName: "Tilapia", Qty: 6, Unit: stockledger.UnitKG}},
	}
	svc := NewService(orderSource, ledgerSource)
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 2, 0, 0, 0, time.UTC) }

	report, err := svc.Generate(context.Background(), "2026-08-29")
	require.NoError(t, err)
	require.Equal(t, "2026-08-29", report.Date)
	require.Len(t, report.Rows, 1)
	require.True(t, report.Rows[0].IsMatch)
	require.Equal(t, 0, report.MismatchCount)
	require.Equal(t, time.Date(2026, 8, 30, 2, 0, 0, 0, time.UTC), report.GeneratedAt)
}

func TestServiceGenerateRequiresDate(t *testing.T) {
	svc := NewService(&fakeOrderSource{}, &fakeLedgerSource{})
	_, err := svc.Generate(context.Background(), "  ")
	require.ErrorIs(t, err, ErrDateRequired)
}

func TestServiceGenerateSurfacesOrderFetchFailure(t *testing.T) {
	boom := errors.New("storage down")
	svc := NewService(&fakeOrderSource{err: boom}, &fakeLedgerSource{})
	_, err := svc.Generate(context.Background(), "2026-08-29")
	require.ErrorIs(t, err, boom)
}

func TestServiceGenerateSurfacesLedgerFetchFailure(t *testing.T) {
	boom := errors.New("ledger down")
	svc := NewService(&fakeOrderSource{}, &fakeLedgerSource{err: boom})
	_, err := svc.Generate(context.Background(), "2026-08-29")
	require.ErrorIs(t, err, boom)
}

func TestServiceGenerateEmptyInputsYieldEmptyReport(t *testing.T) {
	svc := NewService(&fakeOrderSource{}, &fakeLedgerSource{})
	report, err := svc.Generate(context.Background(), "2026-08-29")
	require.NoError(t, err)
	require.Empty(t, report.Rows)
	require.Equal(t, 0, report.MismatchCount)
}

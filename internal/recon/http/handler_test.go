package reconhttp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/arus-retail/arus-retail/internal/orders"
	"github.com/arus-retail/arus-retail/internal/recon"
	"github.com/arus-retail/arus-retail/internal/stockledger"
)

type stubOrders struct {
	orders []orders.Order
}

func (s stubOrders) ListAll(ctx context.Context) ([]orders.Order, error) {
	return s.orders, nil
}

type stubLedger struct {
	opening []stockledger.Entry
	closing []stockledger.Entry
}

func (s stubLedger) ListByDate(ctx context.Context, kind stockledger.Kind, date string) ([]stockledger.Entry, error) {
	if kind == stockledger.KindOpening {
		return s.opening, nil
	}
	return s.closing, nil
}

type stubSnapshots struct {
	snaps []recon.Snapshot
}

func (s stubSnapshots) ListSnapshots(ctx context.Context, limit int) ([]recon.Snapshot, error) {
	return s.snaps, nil
}

func (s stubSnapshots) GetSnapshot(ctx context.Context, id string) (recon.Snapshot, error) {
	for _, snap := range s.snaps {
		if snap.ID == id {
			return snap, nil
		}
	}
	return recon.Snapshot{}, recon.ErrSnapshotNotFound
}

func testRouter(t *testing.T, ledger stubLedger, snaps stubSnapshots) *chi.Mux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := recon.NewService(stubOrders{}, ledger)
	handler := NewHandler(logger, svc, snaps)
	router := chi.NewRouter()
	router.Route("/recon", handler.MountRoutes)
	return router
}

func TestShowReportRequiresDate(t *testing.T) {
	router := testRouter(t, stubLedger{}, stubSnapshots{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recon/report", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "date query parameter required")
}

func TestShowReportReturnsRows(t *testing.T) {
	ledger := stubLedger{
		opening: []stockledger.Entry{{ItemID: "item-1", ItemName: "Catfish", Kind: stockledger.KindOpening, Qty: 10, Unit: stockledger.UnitKG, Date: "2025-09-18"}},
		closing: []stockledger.Entry{{ItemID: "item-1", ItemName: "Catfish", Kind: stockledger.KindClosing, Qty: 10, Unit: stockledger.UnitKG, Date: "2025-09-18"}},
	}
	router := testRouter(t, ledger, stubSnapshots{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recon/report?date=2025-09-18", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var report recon.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Equal(t, "2025-09-18", report.Date)
	require.Len(t, report.Rows, 1)
	require.Equal(t, 0, report.MismatchCount)
}

func TestExportEmptyReport(t *testing.T) {
	router := testRouter(t, stubLedger{}, stubSnapshots{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recon/report/export?date=2025-09-18", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Nothing To Export")
}

func TestExportWritesCSV(t *testing.T) {
	ledger := stubLedger{
		opening: []stockledger.Entry{{ItemID: "item-1", ItemName: "Catfish", Kind: stockledger.KindOpening, Qty: 10, Unit: stockledger.UnitKG, Date: "2025-09-18"}},
	}
	router := testRouter(t, ledger, stubSnapshots{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recon/report/export?date=2025-09-18", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "stock_report_2025-09-18.csv")
	require.True(t, strings.HasPrefix(rec.Body.String(), `"Item",`))
	require.Contains(t, rec.Body.String(), `"Catfish"`)
}

func TestShowSnapshot(t *testing.T) {
	snaps := stubSnapshots{snaps: []recon.Snapshot{{ID: "snap-1", Date: "2025-09-18"}}}
	router := testRouter(t, stubLedger{}, snaps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recon/snapshots/snap-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recon/snapshots/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

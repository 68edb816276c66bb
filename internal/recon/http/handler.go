package reconhttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/arus-retail/arus-retail/internal/platform/httpx"
	"github.com/arus-retail/arus-retail/internal/recon"
)

// SnapshotStore exposes persisted nightly runs.
type SnapshotStore interface {
	ListSnapshots(ctx context.Context, limit int) ([]recon.Snapshot, error)
	GetSnapshot(ctx context.Context, id string) (recon.Snapshot, error)
}

// Handler wires reconciliation endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *recon.Service
	snapshots SnapshotStore
	group     singleflight.Group
}

// NewHandler constructs handler.
func NewHandler(logger *slog.Logger, service *recon.Service, snapshots SnapshotStore) *Handler {
	return &Handler{logger: logger, service: service, snapshots: snapshots}
}

// MountRoutes registers routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/report", h.showReport)
	r.Get("/report/export", h.exportReport)
	r.Get("/snapshots", h.listSnapshots)
	r.Get("/snapshots/{id}", h.showSnapshot)
}

// generate coalesces concurrent report requests for the same date. The
// computation itself stays fresh per call; only simultaneous duplicates share
// one run.
func (h *Handler) generate(ctx context.Context, date string) (recon.Report, error) {
	v, err, _ := h.group.Do(date, func() (interface{}, error) {
		defer h.group.Forget(date)
		return h.service.Generate(ctx, date)
	})
	if err != nil {
		return recon.Report{}, err
	}
	return v.(recon.Report), nil
}

func (h *Handler) showReport(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "date query parameter required")
		return
	}
	report, err := h.generate(r.Context(), date)
	if err != nil {
		h.logger.Error("generate report", slog.String("date", date), slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Report Generation Failed", "")
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "date query parameter required")
		return
	}
	report, err := h.generate(r.Context(), date)
	if err != nil {
		h.logger.Error("generate report for export", slog.String("date", date), slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Report Generation Failed", "")
		return
	}
	if len(report.Rows) == 0 {
		httpx.Problem(w, http.StatusNotFound, "Nothing To Export", "no stock entries recorded for "+date)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=`+recon.ExportFilename(date))
	if err := recon.WriteCSV(w, report.Rows); err != nil {
		h.logger.Error("write csv export", slog.String("date", date), slog.Any("error", err))
	}
}

func (h *Handler) listSnapshots(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.snapshots.ListSnapshots(r.Context(), 30)
	if err != nil {
		h.logger.Error("list snapshots", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, snaps)
}

func (h *Handler) showSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshots.GetSnapshot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, recon.ErrSnapshotNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
			return
		}
		h.logger.Error("get snapshot", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, snap)
}

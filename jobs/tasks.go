package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/arus-retail/arus-retail/internal/observability"
	"github.com/arus-retail/arus-retail/internal/recon"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReconScan runs reconciliation for a business date and persists
	// the snapshot.
	TaskReconScan = "recon:scan"
)

// ReconScanPayload selects the date to reconcile. An empty date means the
// previous business day at handling time.
type ReconScanPayload struct {
	Date string `json:"date"`
}

// NewReconScanTask constructs an Asynq task.
func NewReconScanTask(payload ReconScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReconScan, data, asynq.Queue(QueueDefault)), nil
}

// SnapshotStore persists finished reconciliation runs.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, report recon.Report) (recon.Snapshot, error)
}

// ReconScanHandler processes TaskReconScan tasks.
type ReconScanHandler struct {
	service   *recon.Service
	snapshots SnapshotStore
	metrics   *observability.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewReconScanHandler wires the nightly scan.
func NewReconScanHandler(service *recon.Service, snapshots SnapshotStore, metrics *observability.Metrics, logger *slog.Logger) *ReconScanHandler {
	return &ReconScanHandler{service: service, snapshots: snapshots, metrics: metrics, logger: logger, now: time.Now}
}

// ProcessTask generates the report and stores it as a snapshot.
func (h *ReconScanHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload ReconScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	date := payload.Date
	if date == "" {
		date = h.now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	}
	report, err := h.service.Generate(ctx, date)
	h.metrics.ObserveReport(date, report.MismatchCount, err)
	if err != nil {
		h.logger.Error("recon scan", slog.String("date", date), slog.Any("error", err))
		return err
	}
	if _, err := h.snapshots.SaveSnapshot(ctx, report); err != nil {
		h.logger.Error("save recon snapshot", slog.String("date", date), slog.Any("error", err))
		return err
	}
	h.logger.Info("recon scan complete",
		slog.String("date", date),
		slog.Int("rows", len(report.Rows)),
		slog.Int("mismatches", report.MismatchCount))
	return nil
}

package recon

import (
	"errors"
	"time"

	"github.com/arus-retail/arus-retail/internal/stockledger"
)

// matchTolerance is the floating-point equality threshold for actual vs
// expected usage. A business rule, not a rounding artifact: the comparison
// is strict less-than against this exact constant.
const matchTolerance = 0.001

// SoldQty accumulates sold quantities for one item, split by unit. The same
// physical per-piece sale can appear in both figures because opening and
// closing stock may be tracked in either unit for one item.
type SoldQty struct {
	PCS float64 `json:"pcs"`
	KG  float64 `json:"kg"`
}

// SoldSummary maps item name to accumulated sold quantities for one date.
// In-memory only; recomputed on every report generation.
type SoldSummary map[string]SoldQty

// InUnit returns the accumulated quantity for a ledger unit.
func (q SoldQty) InUnit(unit stockledger.Unit) float64 {
	if unit == stockledger.UnitPCS {
		return q.PCS
	}
	return q.KG
}

// ReportRow is one reconciled (item, unit) pair. ActualUsage may be negative:
// a closing count without a matching opening is modeled as a usage deficit.
// Rows with an opening but no closing keep zero ActualUsage/Difference and
// IsMatch=false, meaning "not yet reconciled".
type ReportRow struct {
	ItemID        string           `json:"item_id"`
	ItemName      string           `json:"item_name"`
	Unit          stockledger.Unit `json:"unit"`
	Opening       float64          `json:"opening"`
	Closing       float64          `json:"closing"`
	Sold          float64          `json:"sold"`
	ActualUsage   float64          `json:"actual_usage"`
	ExpectedUsage float64          `json:"expected_usage"`
	Difference    float64          `json:"difference"`
	IsMatch       bool             `json:"is_match"`
}

// Report is the finished reconciliation for one business date.
type Report struct {
	Date          string      `json:"date"`
	Rows          []ReportRow `json:"rows"`
	MismatchCount int         `json:"mismatch_count"`
	GeneratedAt   time.Time   `json:"generated_at"`
}

// Snapshot is a persisted nightly reconciliation result.
type Snapshot struct {
	ID            string      `json:"id"`
	Date          string      `json:"date"`
	MismatchCount int         `json:"mismatch_count"`
	Rows          []ReportRow `json:"rows,omitempty"`
	GeneratedAt   time.Time   `json:"generated_at"`
}

var (
	// ErrEmptyReport signals a zero-row export: "nothing to export", not a failure.
	ErrEmptyReport = errors.New("recon: report has no rows")
	// ErrDateRequired occurs when no business date is supplied.
	ErrDateRequired = errors.New("recon: date required")
	// ErrSnapshotNotFound occurs when a snapshot id resolves to nothing.
	ErrSnapshotNotFound = errors.New("recon: snapshot not found")
)

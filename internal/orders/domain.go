package orders

import (
	"encoding/json"
	"time"

	"github.com/arus-retail/arus-retail/internal/catalog"
)

// Order is a recorded sale. The items payload is an opaque serialized
// sequence of line entries; it is decoded lazily and tolerantly because
// historic orders were written by several client versions.
type Order struct {
	ID        string          `json:"id"`
	OrderDate string          `json:"order_date"`
	Items     json.RawMessage `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// LineItem is a decoded order line. LiveWeight is a piece count for
// per-piece items and a weight quantity for per-weight items. SaleType and
// WeightPerPCS are carried redundantly on the line so unit conversion needs
// no join back to the catalog.
type LineItem struct {
	ItemName     string           `json:"itemName"`
	LiveWeight   float64          `json:"liveWeight"`
	SaleType     catalog.SaleType `json:"itemSaleType,omitempty"`
	WeightPerPCS *float64         `json:"weightPerPCS,omitempty"`
}

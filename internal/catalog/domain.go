package catalog

import (
	"errors"
	"time"
)

// SaleType enumerates how an item is transacted.
type SaleType string

const (
	// SaleTypePerWeight indicates the item sells by weight.
	SaleTypePerWeight SaleType = "PER_WEIGHT"
	// SaleTypePerPiece indicates the item sells by piece count.
	SaleTypePerPiece SaleType = "PER_PIECE"
)

// Item is a catalog entry. Immutable from the reconciliation engine's
// perspective; owned by inventory management.
type Item struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SaleType     SaleType  `json:"sale_type"`
	WeightPerPCS *float64  `json:"weight_per_pcs,omitempty"`
	PricePerKG   *float64  `json:"price_per_kg,omitempty"`
	PricePerPCS  *float64  `json:"price_per_pcs,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultUnit returns the ledger unit staff expect when counting the item.
func (i Item) DefaultUnit() string {
	if i.SaleType == SaleTypePerPiece {
		return "PCS"
	}
	return "KG"
}

var (
	// ErrItemNotFound occurs when an item id resolves to nothing.
	ErrItemNotFound = errors.New("catalog: item not found")
	// ErrDuplicateName occurs when an item name is already taken.
	ErrDuplicateName = errors.New("catalog: item name already exists")
	// ErrWeightPerPCSRequired occurs when a per-piece item carries no conversion.
	ErrWeightPerPCSRequired = errors.New("catalog: weight per pcs must be positive for per-piece items")
	// ErrNameRequired occurs when the item name is blank.
	ErrNameRequired = errors.New("catalog: name required")
	// ErrInvalidSaleType occurs when the sale type is unknown.
	ErrInvalidSaleType = errors.New("catalog: sale type must be PER_WEIGHT or PER_PIECE")
)

package stockledger

import (
	"errors"
	"time"
)

// Kind distinguishes the two entry lifecycles. Shape is identical.
type Kind string

const (
	// KindOpening is a declared start-of-day count.
	KindOpening Kind = "OPENING"
	// KindClosing is a declared end-of-day count.
	KindClosing Kind = "CLOSING"
)

// Unit enumerates the two trackable stock units.
type Unit string

const (
	// UnitPCS counts pieces.
	UnitPCS Unit = "PCS"
	// UnitKG measures weight in kilograms.
	UnitKG Unit = "KG"
)

// Valid reports whether the unit is one of the two known values.
func (u Unit) Valid() bool {
	return u == UnitPCS || u == UnitKG
}

// Entry is an opening or closing stock declaration. Staff create, edit and
// delete these; one semantic slot per (date, item, unit) is expected but the
// store does not enforce it. Duplicates are resolved last-write-wins by the
// report builder.
type Entry struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Date      string    `json:"date"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Qty       float64   `json:"qty"`
	Unit      Unit      `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	// ErrEntryNotFound occurs when an entry id resolves to nothing.
	ErrEntryNotFound = errors.New("stockledger: entry not found")
	// ErrInvalidKind occurs on an unknown entry kind.
	ErrInvalidKind = errors.New("stockledger: kind must be OPENING or CLOSING")
	// ErrInvalidUnit occurs on an unknown unit.
	ErrInvalidUnit = errors.New("stockledger: unit must be PCS or KG")
	// ErrNegativeQty occurs when a declared quantity is below zero.
	ErrNegativeQty = errors.New("stockledger: quantity must be >= 0")
)

package stockledger

// CreateEntryRequest captures a new opening or closing count.
type CreateEntryRequest struct {
	Kind     Kind    `json:"kind" validate:"required,oneof=OPENING CLOSING"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	ItemID   string  `json:"item_id" validate:"required,uuid4"`
	ItemName string  `json:"item_name" validate:"required,max=200"`
	Qty      float64 `json:"qty" validate:"gte=0"`
	Unit     Unit    `json:"unit" validate:"required,oneof=PCS KG"`
}

// UpdateEntryRequest edits an existing entry.
type UpdateEntryRequest struct {
	Date     *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ItemID   *string  `json:"item_id,omitempty" validate:"omitempty,uuid4"`
	ItemName *string  `json:"item_name,omitempty" validate:"omitempty,max=200"`
	Qty      *float64 `json:"qty,omitempty" validate:"omitempty,gte=0"`
	Unit     *Unit    `json:"unit,omitempty" validate:"omitempty,oneof=PCS KG"`
}

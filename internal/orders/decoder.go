package orders

import (
	"bytes"
	"encoding/json"
)

// DecodeLineItems parses an order's raw items payload into structured line
// entries. Any decoding failure (malformed payload, wrong shape, non-numeric
// fields) yields an empty slice rather than an error: a single corrupt order
// must not abort reconciliation for every other order on the date.
func DecodeLineItems(raw json.RawMessage) []LineItem {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))

	var lines []LineItem
	if err := dec.Decode(&lines); err != nil {
		return nil
	}
	// Trailing garbage after the array counts as malformed.
	if dec.More() {
		return nil
	}
	return lines
}

// Lines decodes the order's own payload.
func (o Order) Lines() []LineItem {
	return DecodeLineItems(o.Items)
}

package recon

import (
	"math"
	"sort"

	"github.com/arus-retail/arus-retail/internal/stockledger"
)

type rowKey struct {
	itemID string
	unit   stockledger.Unit
}

// BuildReport merges opening entries, closing entries and the sales summary
// for one date into one row per (item, unit). Pure function of its inputs.
//
// Openings seed rows with expected usage from sales; closings finalise them
// (actual = opening - closing) or, with no opening counterpart, synthesise a
// row whose actual usage is the negated closing quantity. Duplicate entries
// for the same key are resolved last observed wins. Opening-only rows are
// emitted unreconciled: zero actual/difference, IsMatch false.
func BuildReport(opening, closing []stockledger.Entry, sold SoldSummary) []ReportRow {
	lookup := make(map[rowKey]ReportRow)

	for _, entry := range opening {
		key := rowKey{itemID: entry.ItemID, unit: entry.Unit}
		soldQty := sold[entry.ItemName].InUnit(entry.Unit)
		lookup[key] = ReportRow{
			ItemID:        entry.ItemID,
			ItemName:      entry.ItemName,
			Unit:          entry.Unit,
			Opening:       entry.Qty,
			Sold:          soldQty,
			ExpectedUsage: soldQty,
		}
	}

	for _, entry := range closing {
		key := rowKey{itemID: entry.ItemID, unit: entry.Unit}
		row, ok := lookup[key]
		if ok {
			row.Closing = entry.Qty
			row.ActualUsage = row.Opening - row.Closing
		} else {
			soldQty := sold[entry.ItemName].InUnit(entry.Unit)
			row = ReportRow{
				ItemID:        entry.ItemID,
				ItemName:      entry.ItemName,
				Unit:          entry.Unit,
				Closing:       entry.Qty,
				Sold:          soldQty,
				ExpectedUsage: soldQty,
				ActualUsage:   -entry.Qty,
			}
		}
		row.Difference = row.ActualUsage - row.ExpectedUsage
		row.IsMatch = math.Abs(row.Difference) < matchTolerance
		lookup[key] = row
	}

	rows := make([]ReportRow, 0, len(lookup))
	for _, row := range lookup {
		rows = append(rows, row)
	}
	// Item name ascending per the report contract; unit and id break ties so
	// repeated runs over identical inputs order identically.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ItemName != rows[j].ItemName {
			return rows[i].ItemName < rows[j].ItemName
		}
		if rows[i].Unit != rows[j].Unit {
			return rows[i].Unit < rows[j].Unit
		}
		return rows[i].ItemID < rows[j].ItemID
	})
	return rows
}

// MismatchCount counts rows not flagged as a match. Opening-only rows count
// as mismatches by construction.
func MismatchCount(rows []ReportRow) int {
	count := 0
	for _, row := range rows {
		if !row.IsMatch {
			count++
		}
	}
	return count
}

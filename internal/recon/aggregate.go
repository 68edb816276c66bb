package recon

import (
	"github.com/arus-retail/arus-retail/internal/catalog"
	"github.com/arus-retail/arus-retail/internal/orders"
)

// AggregateSales walks every order dated exactly on the target day and sums
// sold quantities per item name, split by unit. Per-piece lines contribute
// their count to PCS and, when a positive weight-per-piece conversion is
// present, the weight equivalent to KG. Everything else is a weight sale.
//
// Keyed by item name, not id: sales lines may not carry a stable id.
// Orders whose payload fails to decode contribute nothing.
func AggregateSales(all []orders.Order, date string) SoldSummary {
	summary := make(SoldSummary)
	for _, order := range all {
		if order.OrderDate != date {
			continue
		}
		for _, line := range order.Lines() {
			qty := summary[line.ItemName]
			if line.SaleType == catalog.SaleTypePerPiece {
				qty.PCS += line.LiveWeight
				if line.WeightPerPCS != nil && *line.WeightPerPCS > 0 {
					qty.KG += line.LiveWeight * *line.WeightPerPCS
				}
			} else {
				qty.KG += line.LiveWeight
			}
			summary[line.ItemName] = qty
		}
	}
	return summary
}

package recon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arus-retail/arus-retail/internal/orders"
)

func orderOn(date, items string) orders.Order {
	return orders.Order{OrderDate: date, Items: json.RawMessage(items)}
}

func TestAggregateSalesPerPieceConversion(t *testing.T) {
	all := []orders.Order{
		orderOn("2026-08-29", `[{"itemName":"Tilapia","liveWeight":5,"itemSaleType":"PER_PIECE","weightPerPCS":0.2}]`),
	}
	summary := AggregateSales(all, "2026-08-29")
	require.Len(t, summary, 1)
	require.InDelta(t, 5.0, summary["Tilapia"].PCS, 0.0001)
	require.InDelta(t, 1.0, summary["Tilapia"].KG, 0.0001)
}

func TestAggregateSalesPerWeight(t *testing.T) {
	all := []orders.Order{
		orderOn("2026-08-29", `[{"itemName":"Catfish","liveWeight":3.5,"itemSaleType":"PER_WEIGHT"}]`),
	}
	summary := AggregateSales(all, "2026-08-29")
	require.InDelta(t, 3.5, summary["Catfish"].KG, 0.0001)
	require.InDelta(t, 0.0, summary["Catfish"].PCS, 0.0001)
}

func TestAggregateSalesMissingSaleTypeCountsAsWeight(t *testing.T) {
	all := []orders.Order{
		orderOn("2026-08-29", `[{"itemName":"Prawn","liveWeight":2}]`),
	}
	summary := AggregateSales(all, "2026-08-29")
	require.InDelta(t, 2.0, summary["Prawn"].KG, 0.0001)
	require.InDelta(t, 0.0, summary["Prawn"].PCS, 0.0001)
}

func TestAggregateSalesPerPieceWithoutConversionSkipsWeight(t *testing.T) {
	all := []orders.Order{
		orderOn("2026-08-29", `[{"itemName":"Crab","liveWeight":4,"itemSaleType":"PER_PIECE"}]`),
	}
	summary := AggregateSales(all, "2026-08-29")
	require.InDelta(t, 4.0, summary["Crab"].PCS, 0.0001)
	require.InDelta(t, 0.0, summary["Crab"].KG, 0.0001)
}

func TestAggregateSalesFiltersByExactDate(t *testing.T) {
	all := []orders.Order{
		orderOn("2026-08-29", `[{"itemName":"Tilapia","liveWeight":1,"itemSaleType":"PER_WEIGHT"}]`),
		orderOn("2026-08-30", `[{"itemName":"Tilapia","liveWeight":9,"itemSaleType":"PER_WEIGHT"}]`),
	}
	summary := AggregateSales(all, "2026-08-29")
	require.InDelta(t, 1.0, summary["Tilapia"].KG, 0.0001)
}

func TestAggregateSalesSkipsCorruptOrders(t *testing.T) {
	all := []orders.Order{
		orderOn("2026-08-29", `[{"itemName":"Tilapia","liveWeight":2,"itemSaleType":"PER_WEIGHT"}]`),
		orderOn("2026-08-29", `[{"itemName":"Tilapia","liveWeight":`),
		orderOn("2026-08-29", `{"not":"a list"}`),
	}
	summary := AggregateSales(all, "2026-08-29")
	require.InDelta(t, 2.0, summary["Tilapia"].KG, 0.0001)
}

func TestAggregateSalesAccumulatesAcrossOrders(t *testing.T) {
	all := []orders.Order{
		orderOn("2026-08-29", `[{"itemName":"Tilapia","liveWeight":3,"itemSaleType":"PER_PIECE","weightPerPCS":0.5}]`),
		orderOn("2026-08-29", `[{"itemName":"Tilapia","liveWeight":2,"itemSaleType":"PER_PIECE","weightPerPCS":0.5}]`),
	}
	summary := AggregateSales(all, "2026-08-29")
	require.InDelta(t, 5.0, summary["Tilapia"].PCS, 0.0001)
	require.InDelta(t, 2.5, summary["Tilapia"].KG, 0.0001)

	for _, qty := range summary {
		require.GreaterOrEqual(t, qty.PCS, 0.0)
		require.GreaterOrEqual(t, qty.KG, 0.0)
	}
}

package records

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func joinRows(header []string, rows [][]string) []byte {
	lines := []string{strings.Join(header, "|")}
	for _, r := range rows {
		lines = append(lines, strings.Join(r, "|"))
	}
	return []byte(strings.Join(lines, "\n"))
}

func TestEncode_Golden(t *testing.T) {
	g := goldie.New(t)

	items, err := EncodeItems([]Item{
		{
			ItemID: "A1", ItemDisplayName: "Brake Pad (Corolla)", ItemName: "Brake Pad", ItemNumber: "BP-001",
			VehicleModel: "Corolla", SourceBrand: "Denso", Category: "Brakes", UnitValue: 1250.75,
			CurrentStockQty: 14, LowStockThreshold: ptr(5), IsOutOfStock: ptr(false), Status: "active",
			UpdatedAt: "2026-03-01T10:00:00Z",
		},
		{ItemID: "A2", ItemDisplayName: "Oil Filter", CurrentStockQty: 0, IsOutOfStock: ptr(true)},
	})
	require.NoError(t, err)
	g.Assert(t, "inventory_rows", joinRows(InventorySchema.Headers, items))

	orders, lines, err := EncodeOrders([]Order{{
		OrderID: "O1", CustomerID: "C1", RepID: "R7", OrderDate: "2026-03-02",
		GrossTotal: ptr(1000.0), DiscountRate: ptr(0.1), DiscountValue: ptr(100.0),
		NetTotal: 900, PaidAmount: ptr(400.0), BalanceDue: ptr(500.0),
		PaymentStatus: "partial", OrderStatus: "confirmed", UpdatedAt: "2026-03-02T09:30:00Z",
		Lines: []OrderLine{
			{LineID: "L1", ItemID: "A1", ItemName: "Brake Pad", Quantity: 2, UnitValue: 250, LineTotal: 500},
			{LineID: "L2", ItemID: "A2", ItemName: "Oil Filter", Quantity: 4, UnitValue: 125, LineTotal: 500},
		},
	}})
	require.NoError(t, err)
	g.Assert(t, "order_rows", joinRows(OrdersSchema.Headers, orders))
	g.Assert(t, "order_line_rows", joinRows(OrderLinesSchema.Headers, lines))
}

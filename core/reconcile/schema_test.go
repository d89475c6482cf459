package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inventoryV1 = []string{"ID", "Display Name", "Internal Name", "SKU", "Vehicle", "Brand/Origin",
	"Category", "Unit Value", "Stock Qty", "Low Stock Threshold", "Status", "Last Updated"}

var outOfStockRule = Rule{
	Table:   "Inventory",
	Trigger: "Out of Stock",
	Inserts: []Insertion{{Position: 10, Column: "Out of Stock", Default: "FALSE"}},
}

var ordersV1 = []string{"Order ID", "Customer ID", "Rep ID", "Date", "Net Total", "Status", "Last Updated"}
var ordersV2 = []string{"Order ID", "Customer ID", "Rep ID", "Date", "Gross Total", "Discount 1", "Disc 1 Value",
	"Net Total", "Status", "Last Updated"}
var ordersV3 = []string{"Order ID", "Customer ID", "Rep ID", "Date", "Gross Total", "Discount 1", "Disc 1 Value",
	"Discount 2", "Disc 2 Value", "Net Total", "Status", "Last Updated"}

var orderRules = []Rule{
	{
		Table:   "Orders",
		Trigger: "Gross Total",
		Inserts: []Insertion{
			{Position: 4, Column: "Gross Total", Default: "0"},
			{Position: 5, Column: "Discount 1", Default: "0"},
			{Position: 6, Column: "Disc 1 Value", Default: "0"},
			{Position: 7, Column: "Discount 2", Default: "0"},
			{Position: 8, Column: "Disc 2 Value", Default: "0"},
		},
	},
	{
		Table:   "Orders",
		Trigger: "Disc 2 Value",
		Inserts: []Insertion{
			{Position: 7, Column: "Discount 2", Default: "0"},
			{Position: 8, Column: "Disc 2 Value", Default: "0"},
		},
	},
}

func TestEnsureSchema_Empty(t *testing.T) {
	out, mig, err := EnsureSchema(Table{Name: "Inventory"}, inventoryHeader, nil)
	require.NoError(t, err)
	assert.Equal(t, MigrationInitialized, mig.Kind)
	assert.Equal(t, inventoryHeader, out.Header)
	assert.Empty(t, out.Rows)
}

func TestEnsureSchema_Match(t *testing.T) {
	padded := append([]string{" ID "}, inventoryHeader[1:]...)
	in := Table{Name: "Inventory", Header: append(padded, ""), Rows: [][]string{{"A1", "x"}}}

	out, mig, err := EnsureSchema(in, inventoryHeader, []Rule{outOfStockRule})
	require.NoError(t, err)
	assert.False(t, mig.Changed())
	assert.Len(t, out.Rows[0], len(inventoryHeader))
}

// TestEnsureSchema_OutOfStockRule inserts FALSE at position 10 for rows long enough.
func TestEnsureSchema_OutOfStockRule(t *testing.T) {
	full := []string{"A1", "Pad", "pad", "SKU", "Corolla", "Denso", "Brakes", "12.5", "3", "10", "active", "2026-01-01"}
	short := []string{"A2", "Pad 2", "pad", "SKU2", "Vitz", "China", "Brakes", "9", "1", "10"}
	in := Table{Name: "Inventory", Header: inventoryV1, Rows: [][]string{full, short}}

	out, mig, err := EnsureSchema(in, inventoryHeader, []Rule{outOfStockRule})
	require.NoError(t, err)

	assert.Equal(t, MigrationRule, mig.Kind)
	assert.Equal(t, "Inventory:Out of Stock", mig.Rule)
	assert.Len(t, out.Header, 13)
	assert.Equal(t, "Out of Stock", out.Header[10])

	assert.Equal(t, "FALSE", out.Rows[0][10])
	assert.Equal(t, "active", out.Rows[0][11])
	assert.Equal(t, "2026-01-01", out.Rows[0][12])

	// Row of length 10 has nothing at the insertion point and is only padded
	assert.Equal(t, "", out.Rows[1][10])
	assert.Equal(t, "10", out.Rows[1][9])

	for _, row := range out.Rows {
		assert.Len(t, row, 13)
	}
}

func TestEnsureSchema_Monotonic(t *testing.T) {
	in := Table{Name: "Inventory", Header: inventoryV1, Rows: [][]string{
		{"A1", "Pad", "pad", "SKU", "Corolla", "Denso", "Brakes", "12.5", "3", "10", "active", "2026-01-01"},
	}}

	once, _, err := EnsureSchema(in, inventoryHeader, []Rule{outOfStockRule})
	require.NoError(t, err)
	twice, mig, err := EnsureSchema(once, inventoryHeader, []Rule{outOfStockRule})
	require.NoError(t, err)

	assert.False(t, mig.Changed())
	assert.Equal(t, once.Grid(), twice.Grid())
}

func TestEnsureSchema_FirstRuleWins(t *testing.T) {
	t.Run("V1UsesFirstRule", func(t *testing.T) {
		in := Table{Name: "Orders", Header: ordersV1, Rows: [][]string{
			{"O1", "C1", "R1", "2026-01-02", "500", "confirmed", "2026-01-02"},
		}}
		out, mig, err := EnsureSchema(in, ordersV3, orderRules)
		require.NoError(t, err)

		assert.Equal(t, "Orders:Gross Total", mig.Rule)
		assert.Equal(t, []string{"O1", "C1", "R1", "2026-01-02", "0", "0", "0", "0", "0", "500", "confirmed", "2026-01-02"}, out.Rows[0])
	})

	t.Run("V2UsesSecondRule", func(t *testing.T) {
		in := Table{Name: "Orders", Header: ordersV2, Rows: [][]string{
			{"O1", "C1", "R1", "2026-01-02", "600", "0.1", "60", "540", "confirmed", "2026-01-02"},
		}}
		out, mig, err := EnsureSchema(in, ordersV3, orderRules)
		require.NoError(t, err)

		assert.Equal(t, "Orders:Disc 2 Value", mig.Rule)
		assert.Equal(t, []string{"O1", "C1", "R1", "2026-01-02", "600", "0.1", "60", "0", "0", "540", "confirmed", "2026-01-02"}, out.Rows[0])
	})
}

func TestEnsureSchema_RulesScopedByTable(t *testing.T) {
	in := Table{Name: "Customers", Header: []string{"ID", "Name"}, Rows: [][]string{{"C1", "Shop"}}}
	out, mig, err := EnsureSchema(in, []string{"ID", "Name", "City"}, []Rule{outOfStockRule})
	require.NoError(t, err)

	assert.Equal(t, MigrationGeneric, mig.Kind)
	assert.Equal(t, []string{"City"}, mig.Added)
	assert.Equal(t, []string{"C1", "Shop", ""}, out.Rows[0])
}

func TestEnsureSchema_InvalidRule(t *testing.T) {
	bad := Rule{
		Table:   "Inventory",
		Trigger: "Out of Stock",
		Inserts: []Insertion{{Position: 3, Column: "Out of Stock", Default: "FALSE"}},
	}
	in := Table{Name: "Inventory", Header: inventoryV1, Rows: [][]string{{"A1"}}}

	_, _, err := EnsureSchema(in, inventoryHeader, []Rule{bad})
	assert.ErrorIs(t, err, ErrInvalidRule)

	outOfRange := Rule{Table: "Inventory", Trigger: "Out of Stock",
		Inserts: []Insertion{{Position: 40, Column: "Out of Stock"}}}
	_, _, err = EnsureSchema(in, inventoryHeader, []Rule{outOfRange})
	assert.ErrorIs(t, err, ErrInvalidRule)

	// Input left as read
	assert.Equal(t, inventoryV1, in.Header)
}

func TestEnsureSchema_DoesNotMutateInput(t *testing.T) {
	row := []string{"A1", "Pad", "pad", "SKU", "Corolla", "Denso", "Brakes", "12.5", "3", "10", "active", "2026-01-01"}
	in := Table{Name: "Inventory", Header: inventoryV1, Rows: [][]string{row}}

	_, _, err := EnsureSchema(in, inventoryHeader, []Rule{outOfStockRule})
	require.NoError(t, err)
	assert.Len(t, in.Rows[0], 12)
	assert.Equal(t, "active", in.Rows[0][10])
}

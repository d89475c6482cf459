package records

import (
	"testing"

	"partflow-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaFor(t *testing.T, table string) Schema {
	t.Helper()
	for _, s := range Schemas() {
		if s.Table == table {
			return s
		}
	}
	t.Fatalf("no schema for %s", table)
	return Schema{}
}

// TestRules_ReachCurrentSchema replays every legacy layout through EnsureSchema.
func TestRules_ReachCurrentSchema(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		header   []string
		row      []string
		wantRule string
		want     []string
	}{
		{
			name:     "CustomersV1",
			table:    TableCustomers,
			header:   []string{"ID", "Shop Name", "Address", "Phone", "City", "Discount", "Status", "Last Updated"},
			row:      []string{"C1", "Shop", "Addr", "077", "Kandy", "0.1", "active", "2026-01-01"},
			wantRule: "Customers:Discount 2",
			want:     []string{"C1", "Shop", "Addr", "077", "Kandy", "0.1", "0", "0", "active", "2026-01-01"},
		},
		{
			name:     "CustomersV2",
			table:    TableCustomers,
			header:   []string{"ID", "Shop Name", "Address", "Phone", "City", "Discount", "Discount 2", "Status", "Last Updated"},
			row:      []string{"C1", "Shop", "Addr", "077", "Kandy", "0.1", "0.05", "active", "2026-01-01"},
			wantRule: "Customers:Balance",
			want:     []string{"C1", "Shop", "Addr", "077", "Kandy", "0.1", "0.05", "0", "active", "2026-01-01"},
		},
		{
			name:   "InventoryV1",
			table:  TableInventory,
			header: []string{"ID", "Display Name", "Internal Name", "SKU", "Vehicle", "Brand/Origin", "Category", "Unit Value", "Stock Qty", "Low Stock Threshold", "Status", "Last Updated"},
			row:    []string{"A1", "Pad", "pad", "S1", "Corolla", "Denso", "Brakes", "12", "3", "10", "active", "2026-01-01"},
			wantRule: "Inventory:Out of Stock",
			want:     []string{"A1", "Pad", "pad", "S1", "Corolla", "Denso", "Brakes", "12", "3", "10", "FALSE", "active", "2026-01-01"},
		},
		{
			name:     "OrdersV1",
			table:    TableOrders,
			header:   []string{"Order ID", "Customer ID", "Rep ID", "Date", "Net Total", "Status", "Last Updated"},
			row:      []string{"O1", "C1", "R1", "2026-01-02", "500", "confirmed", "2026-01-02"},
			wantRule: "Orders:Gross Total",
			want:     []string{"O1", "C1", "R1", "2026-01-02", "0", "0", "0", "0", "0", "500", "0", "0", "", "", "confirmed", "2026-01-02"},
		},
		{
			name:   "OrdersV2",
			table:  TableOrders,
			header: []string{"Order ID", "Customer ID", "Rep ID", "Date", "Gross Total", "Discount 1", "Disc 1 Value", "Net Total", "Paid", "Balance Due", "Payment Status", "Delivery Status", "Status", "Last Updated"},
			row:    []string{"O1", "C1", "R1", "2026-01-02", "600", "0.1", "60", "540", "540", "0", "paid", "delivered", "invoiced", "2026-01-03"},
			wantRule: "Orders:Disc 2 Value",
			want:     []string{"O1", "C1", "R1", "2026-01-02", "600", "0.1", "60", "0", "0", "540", "540", "0", "paid", "delivered", "invoiced", "2026-01-03"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := schemaFor(t, tt.table)
			in := reconcile.Table{Name: tt.table, Header: tt.header, Rows: [][]string{tt.row}}

			out, mig, err := reconcile.EnsureSchema(in, schema.Headers, Rules)
			require.NoError(t, err)

			assert.Equal(t, reconcile.MigrationRule, mig.Kind)
			assert.Equal(t, tt.wantRule, mig.Rule)
			assert.Equal(t, schema.Headers, out.Header)
			assert.Equal(t, tt.want, out.Rows[0])
		})
	}
}

func TestRules_CurrentSchemaIsStable(t *testing.T) {
	for _, schema := range Schemas() {
		in := reconcile.Table{Name: schema.Table, Header: schema.Headers}
		_, mig, err := reconcile.EnsureSchema(in, schema.Headers, Rules)
		require.NoError(t, err)
		assert.False(t, mig.Changed(), schema.Table)
	}
}

func TestSchemas_Order(t *testing.T) {
	var names []string
	for _, s := range Schemas() {
		names = append(names, s.Table)
		assert.Equal(t, 0, s.KeyIndex)
	}
	assert.Equal(t, []string{TableCustomers, TableInventory, TableOrders, TableOrderLines}, names)
}

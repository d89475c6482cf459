package records

import "partflow-sync/core/reconcile"

// Table names as they appear as spreadsheet tabs.
const (
	TableCustomers  = "Customers"
	TableInventory  = "Inventory"
	TableOrders     = "Orders"
	TableOrderLines = "OrderLines"
)

// Schema is the current column layout of one table.
type Schema struct {
	Table    string
	Version  int
	Headers  []string
	KeyIndex int
}

var (
	CustomersSchema = Schema{
		Table:   TableCustomers,
		Version: 3,
		Headers: []string{
			"ID", "Shop Name", "Address", "Phone", "City", "Discount",
			"Discount 2", "Balance", "Status", "Last Updated",
		},
	}

	InventorySchema = Schema{
		Table:   TableInventory,
		Version: 2,
		Headers: []string{
			"ID", "Display Name", "Internal Name", "SKU", "Vehicle", "Brand/Origin",
			"Category", "Unit Value", "Stock Qty", "Low Stock Threshold", "Out of Stock",
			"Status", "Last Updated",
		},
	}

	OrdersSchema = Schema{
		Table:   TableOrders,
		Version: 3,
		Headers: []string{
			"Order ID", "Customer ID", "Rep ID", "Date", "Gross Total",
			"Discount 1", "Disc 1 Value", "Discount 2", "Disc 2 Value", "Net Total",
			"Paid", "Balance Due", "Payment Status", "Delivery Status", "Status", "Last Updated",
		},
	}

	OrderLinesSchema = Schema{
		Table:   TableOrderLines,
		Version: 1,
		Headers: []string{"Line ID", "Order ID", "Item ID", "Item Name", "Qty", "Unit Price", "Line Total"},
	}
)

// Schemas returns every table schema in sync order.
func Schemas() []Schema {
	return []Schema{CustomersSchema, InventorySchema, OrdersSchema, OrderLinesSchema}
}

// Rules lists the known column insertions, oldest layout first within a table.
// EnsureSchema applies the first rule whose trigger column is missing.
var Rules = []reconcile.Rule{
	{
		// v1 -> v3
		Table:   TableCustomers,
		Trigger: "Discount 2",
		Inserts: []reconcile.Insertion{
			{Position: 6, Column: "Discount 2", Default: "0"},
			{Position: 7, Column: "Balance", Default: "0"},
		},
	},
	{
		// v2 -> v3
		Table:   TableCustomers,
		Trigger: "Balance",
		Inserts: []reconcile.Insertion{
			{Position: 7, Column: "Balance", Default: "0"},
		},
	},
	{
		Table:   TableInventory,
		Trigger: "Out of Stock",
		Inserts: []reconcile.Insertion{
			{Position: 10, Column: "Out of Stock", Default: "FALSE"},
		},
	},
	{
		// v1 -> v3
		Table:   TableOrders,
		Trigger: "Gross Total",
		Inserts: []reconcile.Insertion{
			{Position: 4, Column: "Gross Total", Default: "0"},
			{Position: 5, Column: "Discount 1", Default: "0"},
			{Position: 6, Column: "Disc 1 Value", Default: "0"},
			{Position: 7, Column: "Discount 2", Default: "0"},
			{Position: 8, Column: "Disc 2 Value", Default: "0"},
			{Position: 10, Column: "Paid", Default: "0"},
			{Position: 11, Column: "Balance Due", Default: "0"},
			{Position: 12, Column: "Payment Status", Default: ""},
			{Position: 13, Column: "Delivery Status", Default: ""},
		},
	},
	{
		// v2 -> v3
		Table:   TableOrders,
		Trigger: "Disc 2 Value",
		Inserts: []reconcile.Insertion{
			{Position: 7, Column: "Discount 2", Default: "0"},
			{Position: 8, Column: "Disc 2 Value", Default: "0"},
		},
	},
}

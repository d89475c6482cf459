package records

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"partflow-sync/core/utils"
)

// ErrMissingKey is returned when a record has no primary key.
var ErrMissingKey = errors.New("record is missing its key")

// EncodeCustomer returns c as a row in CustomersSchema order.
func EncodeCustomer(c Customer) ([]string, error) {
	if strings.TrimSpace(c.CustomerID) == "" {
		return nil, fmt.Errorf("%w: customer_id", ErrMissingKey)
	}
	return []string{
		c.CustomerID,
		c.ShopName,
		c.Address,
		c.Phone,
		c.CityRef,
		utils.FormatFloat(c.DiscountRate),
		utils.FormatFloat(floatOrZero(c.SecondaryDiscountRate)),
		utils.FormatFloat(floatOrZero(c.OutstandingBalance)),
		orStatus(c.Status),
		c.UpdatedAt,
	}, nil
}

// EncodeItem returns it as a row in InventorySchema order.
func EncodeItem(it Item) ([]string, error) {
	if strings.TrimSpace(it.ItemID) == "" {
		return nil, fmt.Errorf("%w: item_id", ErrMissingKey)
	}
	return []string{
		it.ItemID,
		it.ItemDisplayName,
		it.ItemName,
		it.ItemNumber,
		it.VehicleModel,
		it.SourceBrand,
		orCategory(it.Category),
		utils.FormatFloat(it.UnitValue),
		strconv.Itoa(it.CurrentStockQty),
		strconv.Itoa(thresholdOrDefault(it.LowStockThreshold)),
		utils.FormatBool(boolOrFalse(it.IsOutOfStock)),
		orStatus(it.Status),
		it.UpdatedAt,
	}, nil
}

// EncodeOrder returns o as a row in OrdersSchema order. Lines are encoded separately.
func EncodeOrder(o Order) ([]string, error) {
	if strings.TrimSpace(o.OrderID) == "" {
		return nil, fmt.Errorf("%w: order_id", ErrMissingKey)
	}
	return []string{
		o.OrderID,
		o.CustomerID,
		o.RepID,
		o.OrderDate,
		utils.FormatFloat(floatOrZero(o.GrossTotal)),
		utils.FormatFloat(floatOrZero(o.DiscountRate)),
		utils.FormatFloat(floatOrZero(o.DiscountValue)),
		utils.FormatFloat(floatOrZero(o.SecondaryDiscountRate)),
		utils.FormatFloat(floatOrZero(o.SecondaryDiscountValue)),
		utils.FormatFloat(o.NetTotal),
		utils.FormatFloat(floatOrZero(o.PaidAmount)),
		utils.FormatFloat(floatOrZero(o.BalanceDue)),
		o.PaymentStatus,
		o.DeliveryStatus,
		o.OrderStatus,
		o.UpdatedAt,
	}, nil
}

// EncodeOrderLine returns l as a row in OrderLinesSchema order. The stored order
// id always comes from the parent order.
func EncodeOrderLine(orderID string, l OrderLine) ([]string, error) {
	if strings.TrimSpace(l.LineID) == "" {
		return nil, fmt.Errorf("%w: line_id on order %s", ErrMissingKey, orderID)
	}
	return []string{
		l.LineID,
		orderID,
		l.ItemID,
		l.ItemName,
		strconv.Itoa(l.Quantity),
		utils.FormatFloat(l.UnitValue),
		utils.FormatFloat(l.LineTotal),
	}, nil
}

// EncodeCustomers encodes a batch, failing on the first invalid record.
func EncodeCustomers(cs []Customer) ([][]string, error) {
	rows := make([][]string, 0, len(cs))
	for i, c := range cs {
		row, err := EncodeCustomer(c)
		if err != nil {
			return nil, fmt.Errorf("customers[%d]: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// EncodeItems encodes a batch, failing on the first invalid record.
func EncodeItems(items []Item) ([][]string, error) {
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		row, err := EncodeItem(it)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// EncodeOrders encodes orders and flattens their lines in batch order.
func EncodeOrders(orders []Order) (orderRows, lineRows [][]string, err error) {
	orderRows = make([][]string, 0, len(orders))
	for i, o := range orders {
		row, err := EncodeOrder(o)
		if err != nil {
			return nil, nil, fmt.Errorf("orders[%d]: %w", i, err)
		}
		orderRows = append(orderRows, row)

		for j, l := range o.Lines {
			line, err := EncodeOrderLine(o.OrderID, l)
			if err != nil {
				return nil, nil, fmt.Errorf("orders[%d].lines[%d]: %w", i, j, err)
			}
			lineRows = append(lineRows, line)
		}
	}
	return orderRows, lineRows, nil
}

// record reads cells by column name so tables still in an older layout decode too.
type record struct {
	cells []string
	index map[string]int
}

func (r record) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func (r record) number(column string) float64 {
	return utils.ToFloat(r.get(column))
}

func (r record) numberPtr(column string) *float64 {
	f := r.number(column)
	return &f
}

func (r record) integer(column string) int {
	return utils.ToInt(r.get(column))
}

// records yields each data row of grid whose key cell is non-empty.
func records(grid [][]string, schema Schema) []record {
	if len(grid) == 0 {
		return nil
	}
	index := make(map[string]int, len(grid[0]))
	for i, h := range grid[0] {
		name := strings.TrimSpace(h)
		if _, dup := index[name]; !dup && name != "" {
			index[name] = i
		}
	}

	key := schema.Headers[schema.KeyIndex]
	out := make([]record, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		r := record{cells: cells, index: index}
		if r.get(key) == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DecodeCustomers reads a Customers grid, header first.
func DecodeCustomers(grid [][]string) []Customer {
	rs := records(grid, CustomersSchema)
	out := make([]Customer, 0, len(rs))
	for _, r := range rs {
		out = append(out, Customer{
			CustomerID:            r.get("ID"),
			ShopName:              r.get("Shop Name"),
			Address:               r.get("Address"),
			Phone:                 r.get("Phone"),
			CityRef:               r.get("City"),
			DiscountRate:          r.number("Discount"),
			SecondaryDiscountRate: r.numberPtr("Discount 2"),
			OutstandingBalance:    r.numberPtr("Balance"),
			Status:                orStatus(r.get("Status")),
			UpdatedAt:             r.get("Last Updated"),
			SyncStatus:            SyncedStatus,
		})
	}
	return out
}

// DecodeItems reads an Inventory grid, header first.
func DecodeItems(grid [][]string) []Item {
	rs := records(grid, InventorySchema)
	out := make([]Item, 0, len(rs))
	for _, r := range rs {
		display := r.get("Display Name")

		threshold := DefaultLowStockThreshold
		if raw := r.get("Low Stock Threshold"); raw != "" {
			threshold = utils.ToInt(raw)
		}
		outOfStock := utils.ToBool(r.get("Out of Stock"))

		out = append(out, Item{
			ItemID:            r.get("ID"),
			ItemDisplayName:   display,
			ItemName:          orDefault(r.get("Internal Name"), display),
			ItemNumber:        r.get("SKU"),
			VehicleModel:      r.get("Vehicle"),
			SourceBrand:       orDefault(r.get("Brand/Origin"), DefaultBrand),
			Category:          orCategory(r.get("Category")),
			UnitValue:         r.number("Unit Value"),
			CurrentStockQty:   r.integer("Stock Qty"),
			LowStockThreshold: &threshold,
			IsOutOfStock:      &outOfStock,
			Status:            orStatus(r.get("Status")),
			UpdatedAt:         r.get("Last Updated"),
			SyncStatus:        SyncedStatus,
		})
	}
	return out
}

// DecodeOrderLines reads an OrderLines grid, header first.
func DecodeOrderLines(grid [][]string) []OrderLine {
	rs := records(grid, OrderLinesSchema)
	out := make([]OrderLine, 0, len(rs))
	for _, r := range rs {
		out = append(out, OrderLine{
			LineID:    r.get("Line ID"),
			OrderID:   r.get("Order ID"),
			ItemID:    r.get("Item ID"),
			ItemName:  r.get("Item Name"),
			Quantity:  r.integer("Qty"),
			UnitValue: r.number("Unit Price"),
			LineTotal: r.number("Line Total"),
		})
	}
	return out
}

// DecodeOrders reads the Orders grid and attaches lines from the OrderLines grid
// by their stored order id. Orders without lines get an empty slice.
func DecodeOrders(orderGrid, lineGrid [][]string) []Order {
	grouped := GroupLines(DecodeOrderLines(lineGrid))

	rs := records(orderGrid, OrdersSchema)
	out := make([]Order, 0, len(rs))
	for _, r := range rs {
		id := r.get("Order ID")
		lines := grouped[id]
		if lines == nil {
			lines = []OrderLine{}
		}
		out = append(out, Order{
			OrderID:                id,
			CustomerID:             r.get("Customer ID"),
			RepID:                  r.get("Rep ID"),
			OrderDate:              r.get("Date"),
			GrossTotal:             r.numberPtr("Gross Total"),
			DiscountRate:           r.numberPtr("Discount 1"),
			DiscountValue:          r.numberPtr("Disc 1 Value"),
			SecondaryDiscountRate:  r.numberPtr("Discount 2"),
			SecondaryDiscountValue: r.numberPtr("Disc 2 Value"),
			NetTotal:               r.number("Net Total"),
			PaidAmount:             r.numberPtr("Paid"),
			BalanceDue:             r.numberPtr("Balance Due"),
			PaymentStatus:          r.get("Payment Status"),
			DeliveryStatus:         r.get("Delivery Status"),
			OrderStatus:            r.get("Status"),
			UpdatedAt:              r.get("Last Updated"),
			SyncStatus:             SyncedStatus,
			Lines:                  lines,
		})
	}
	return out
}

// GroupLines groups lines by order id, keeping their table order.
func GroupLines(lines []OrderLine) map[string][]OrderLine {
	grouped := make(map[string][]OrderLine)
	for _, l := range lines {
		grouped[l.OrderID] = append(grouped[l.OrderID], l)
	}
	return grouped
}

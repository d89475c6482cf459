package records

// Customer is a shop the reps sell to.
type Customer struct {
	CustomerID            string   `json:"customer_id"`
	ShopName              string   `json:"shop_name"`
	Address               string   `json:"address"`
	Phone                 string   `json:"phone"`
	CityRef               string   `json:"city_ref"`
	DiscountRate          float64  `json:"discount_rate"`
	SecondaryDiscountRate *float64 `json:"secondary_discount_rate,omitempty"`
	OutstandingBalance    *float64 `json:"outstanding_balance,omitempty"`
	Status                string   `json:"status"`
	UpdatedAt             string   `json:"updated_at"`
	SyncStatus            string   `json:"sync_status,omitempty"`
}

// Item is an inventory line.
type Item struct {
	ItemID            string  `json:"item_id"`
	ItemDisplayName   string  `json:"item_display_name"`
	ItemName          string  `json:"item_name"`
	ItemNumber        string  `json:"item_number"`
	VehicleModel      string  `json:"vehicle_model"`
	SourceBrand       string  `json:"source_brand"`
	Category          string  `json:"category"`
	UnitValue         float64 `json:"unit_value"`
	CurrentStockQty   int     `json:"current_stock_qty"`
	LowStockThreshold *int    `json:"low_stock_threshold,omitempty"`
	IsOutOfStock      *bool   `json:"is_out_of_stock,omitempty"`
	Status            string  `json:"status"`
	UpdatedAt         string  `json:"updated_at"`
	SyncStatus        string  `json:"sync_status,omitempty"`
}

// Order is a sales order. Lines are owned by the order on the wire but stored
// in their own table.
type Order struct {
	OrderID                string      `json:"order_id"`
	CustomerID             string      `json:"customer_id"`
	RepID                  string      `json:"rep_id,omitempty"`
	OrderDate              string      `json:"order_date"`
	GrossTotal             *float64    `json:"gross_total,omitempty"`
	DiscountRate           *float64    `json:"discount_rate,omitempty"`
	DiscountValue          *float64    `json:"discount_value,omitempty"`
	SecondaryDiscountRate  *float64    `json:"secondary_discount_rate,omitempty"`
	SecondaryDiscountValue *float64    `json:"secondary_discount_value,omitempty"`
	NetTotal               float64     `json:"net_total"`
	PaidAmount             *float64    `json:"paid_amount,omitempty"`
	BalanceDue             *float64    `json:"balance_due,omitempty"`
	PaymentStatus          string      `json:"payment_status,omitempty"`
	DeliveryStatus         string      `json:"delivery_status,omitempty"`
	OrderStatus            string      `json:"order_status"`
	UpdatedAt              string      `json:"updated_at"`
	SyncStatus             string      `json:"sync_status,omitempty"`
	Lines                  []OrderLine `json:"lines"`
}

// OrderLine is one item on an order.
type OrderLine struct {
	LineID    string  `json:"line_id"`
	OrderID   string  `json:"order_id"`
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitValue float64 `json:"unit_value"`
	LineTotal float64 `json:"line_total"`
}

package syncer

// Config holds sync behaviour switches.
type Config struct {
	// OverwriteOrders lets overwrite mode replace Orders and OrderLines too.
	// When false those tables are always upserted so order history is kept.
	OverwriteOrders bool `mapstructure:"overwrite_orders" default:"false"`
}

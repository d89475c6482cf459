package records

// Values written or reported when a field is absent.
const (
	DefaultCategory          = "Uncategorized"
	DefaultBrand             = "Unknown"
	DefaultStatus            = "active"
	DefaultLowStockThreshold = 10

	// SyncedStatus marks every record returned by a pull.
	SyncedStatus = "synced"
)

func orCategory(s string) string {
	return orDefault(s, DefaultCategory)
}

func orStatus(s string) string {
	return orDefault(s, DefaultStatus)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func thresholdOrDefault(n *int) int {
	if n == nil {
		return DefaultLowStockThreshold
	}
	return *n
}

func boolOrFalse(b *bool) bool {
	return b != nil && *b
}

package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// Strings that are not integers fall back to their truncated float value,
// and anything unparseable yields 0. Out-of-range values are clamped.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return floatToInt(v)
	case float32:
		return floatToInt(float64(v))
	case string:
		s := cleanNumber(v)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		return floatToInt(parseFinite(s))
	default:
		return ToInt(ToString(v))
	}
}

// ToFloat converts various types to float64. Unparseable values, NaN and
// infinities yield 0.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseFinite(cleanNumber(v))
	default:
		return ToFloat(ToString(v))
	}
}

// ToString converts various types to string.
// Floats never use exponent notation and bools use the spreadsheet spelling.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true", "yes").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, float64:
		return ToInt(v) == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes":
			return true
		}
		return false
	default:
		return false
	}
}

// FormatFloat renders a number the way it is written into a cell.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatBool renders a flag the way it is written into a cell.
func FormatBool(b bool) string {
	return ToString(b)
}

// cleanNumber strips whitespace and thousands separators.
func cleanNumber(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}

// parseFinite parses s as a float. Errors, NaN and infinities yield 0.
func parseFinite(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func floatToInt(f float64) int {
	f = finite(f)
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coerce converts a raw cell value to a float64 and reports whether the
// conversion succeeded. Numbers pass through, numeric strings parse, booleans
// map to 0/1. nil and anything else fail.
func Coerce(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Num is the lenient coercion used by the metric calculator: unparsable or
// missing values collapse to 0, as do NaNs, so arithmetic never propagates
// garbage.
func Num(v any) float64 {
	f, ok := Coerce(v)
	if !ok || math.IsNaN(f) {
		return 0
	}
	return f
}

// Round2 rounds to 2 decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// FormatPercent formats a ratio-to-100 value with 2 decimals ("0.00" style).
func FormatPercent(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0.00"
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

package utils

import (
	"strconv"
	"strings"
)

// GetString returns the cell under key as a string. Numeric cells keep their
// plain decimal form (part numbers often parse as numbers).
func GetString(row map[string]interface{}, key string) string {
	val, ok := row[key]
	if !ok || val == nil {
		return ""
	}

	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// GetFloat returns the cell under key as a float64. The second result is
// false when the cell holds a non-numeric, non-blank value.
func GetFloat(row map[string]interface{}, key string) (float64, bool) {
	val, ok := row[key]
	if !ok || val == nil {
		return 0, true
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return 0, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

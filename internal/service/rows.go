package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/customer-journey/backend/internal/warehouse"
)

func getString(r warehouse.Row, key string) string {
	switch t := r[key].(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func getIntPtr(r warehouse.Row, key string) *int64 {
	var v int64
	switch t := r[key].(type) {
	case int:
		v = int64(t)
	case int8:
		v = int64(t)
	case int16:
		v = int64(t)
	case int32:
		v = int64(t)
	case int64:
		v = t
	case uint32:
		v = int64(t)
	case float32:
		v = int64(t)
	case float64:
		v = int64(t)
	case decimal.Decimal:
		v = t.IntPart()
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return nil
		}
		v = d.IntPart()
	default:
		return nil
	}
	return &v
}

func getInt(r warehouse.Row, key string) int64 {
	if v := getIntPtr(r, key); v != nil {
		return *v
	}
	return 0
}

// getFloat expects a row that went through warehouse.Normalize.
func getFloat(r warehouse.Row, key string) *float64 {
	f, _ := r[key].(*float64)
	return f
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// dateOnly trims a normalized timestamp down to YYYY-MM-DD.
func dateOnly(v string) string {
	if len(v) >= len("2006-01-02") {
		return v[:10]
	}
	return v
}


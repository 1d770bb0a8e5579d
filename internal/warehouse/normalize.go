package warehouse

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type float64Valuer interface {
	Float64Value() (pgtype.Float8, error)
}

// Normalize rewrites driver values in place: timestamps become UTC RFC3339
// strings, latitude/longitude become *float64 and raw bytes become strings.
// Everything else is left as the driver returned it.
func Normalize(row Row) Row {
	for k, v := range row {
		if k == "latitude" || k == "longitude" {
			row[k] = toFloatPtr(v)
			continue
		}
		switch t := v.(type) {
		case time.Time:
			row[k] = FormatTime(t)
		case *time.Time:
			if t == nil {
				row[k] = nil
			} else {
				row[k] = FormatTime(*t)
			}
		case []byte:
			row[k] = string(t)
		}
	}
	return row
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toFloatPtr(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil
	case *float64:
		return t
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case decimal.Decimal:
		f, _ = t.Float64()
	case string:
		return parseDecimal(t)
	case []byte:
		return parseDecimal(string(t))
	case float64Valuer:
		fv, err := t.Float64Value()
		if err != nil || !fv.Valid {
			return nil
		}
		f = fv.Float64
	default:
		return nil
	}
	return &f
}

func parseDecimal(s string) *float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}

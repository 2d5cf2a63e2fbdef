package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FixedPriceTable maps a size label to quantity-tier totals in cents, e.g.
// {"12x18": {"50": 9500, "100": 16500}}. Tier keys stay strings because the
// table round-trips through JSONB; the pricing engine parses them on lookup.
type FixedPriceTable map[string]map[string]int64

// Value implements driver.Valuer for JSONB storage.
func (t FixedPriceTable) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for JSONB storage.
func (t *FixedPriceTable) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported fixed price table source %T", src)
	}
	return json.Unmarshal(raw, t)
}

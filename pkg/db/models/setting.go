package models

import "time"

// Setting is a single tunable knob stored as a key/value string pair. Numeric settings are
// parsed on read with a hardcoded fallback when absent or malformed.
type Setting struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// HardwareItem is a purchasable accessory resold alongside a product, e.g. a
// banner stand. WholesaleCents is our cost; retail markup is applied by the
// pricing engine.
type HardwareItem struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug           string    `gorm:"column:slug;not null;uniqueIndex"`
	Name           string    `gorm:"column:name;not null"`
	WholesaleCents int64     `gorm:"column:wholesale_cents;not null"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

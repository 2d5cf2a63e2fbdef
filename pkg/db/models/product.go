package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/signforge/signforge-backend/pkg/enums"
	"github.com/signforge/signforge-backend/pkg/types"
)

// Product represents a storefront listing. The engine only reads the pricing
// configuration: category, pricing unit, optional fixed-price table, default
// material, and fixed dimensions for products the buyer cannot resize.
type Product struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU             string                `gorm:"column:sku;not null;uniqueIndex"`
	Title           string                `gorm:"column:title;not null"`
	Category        enums.ProductCategory `gorm:"column:category;not null"`
	PricingUnit     enums.PricingUnit     `gorm:"column:pricing_unit;not null;default:'formula'"`
	DefaultMaterial *string               `gorm:"column:default_material"`
	WidthIn         *float64              `gorm:"column:width_in;type:numeric(8,3)"`
	HeightIn        *float64              `gorm:"column:height_in;type:numeric(8,3)"`
	SizeLabel       *string               `gorm:"column:size_label"`
	FixedPrices     types.FixedPriceTable `gorm:"column:fixed_prices;type:jsonb"`
	Finishes        pq.StringArray        `gorm:"column:finishes;type:text[];not null;default:ARRAY[]::text[]"`
	MinQuantity     int                   `gorm:"column:min_quantity;not null;default:1"`
	IsActive        bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

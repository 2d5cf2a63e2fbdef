package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Material is a purchasable substrate (vinyl roll, board sheet, paper stock,
// laminate). UnitCost is dollars per square foot for roll media and dollars
// per parent sheet for sheeted stock; Family disambiguates which reading
// applies and which parent sheet size small-format jobs impose onto.
type Material struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string         `gorm:"column:name;not null;uniqueIndex"`
	UnitCost  float64        `gorm:"column:unit_cost;type:numeric(10,4);not null"`
	Family    string         `gorm:"column:family;not null;default:''"`
	Keywords  pq.StringArray `gorm:"column:keywords;type:text[];not null;default:ARRAY[]::text[]"`
	IsActive  bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// Material families referenced by the pricing templates.
const (
	MaterialFamilyRoll     = "roll"
	MaterialFamilySheet    = "sheet"
	MaterialFamilyBoard    = "board"
	MaterialFamilyNCR      = "ncr"
	MaterialFamilyLaminate = "laminate"
)

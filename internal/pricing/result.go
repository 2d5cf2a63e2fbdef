package pricing

import "github.com/signforge/signforge-backend/pkg/enums"

// CostComponent is one named line of the cost ledger, in cents.
type CostComponent struct {
	Name  string `json:"name"`
	Cents int64  `json:"cents"`
}

// Breakdown is the auditable cost/margin ledger behind a price.
type Breakdown struct {
	Components     []CostComponent `json:"components"`
	MarginFraction float64         `json:"margin_fraction"`
	Multiplier     float64         `json:"multiplier"`
	FinalCents     int64           `json:"final_cents"`
}

// Result is the engine output. UnitCents is derived from TotalCents, so
// UnitCents × quantity may drift from TotalCents by rounding.
type Result struct {
	TotalCents int64                `json:"total_cents"`
	UnitCents  int64                `json:"unit_cents"`
	Currency   enums.Currency       `json:"currency"`
	Template   enums.Template       `json:"template"`
	PriceLevel enums.MarginCategory `json:"price_level"`
	Breakdown  Breakdown            `json:"breakdown"`
	Meta       map[string]any       `json:"meta,omitempty"`
}

// costLine is a template-internal dollar amount awaiting the cents boundary.
type costLine struct {
	name    string
	dollars float64
}

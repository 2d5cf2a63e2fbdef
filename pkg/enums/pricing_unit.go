package enums

import "fmt"

// PricingUnit selects how a product is priced: through the cost formulas,
// through a flat outsourced size/quantity table, or not at all (quote only).
type PricingUnit string

const (
	PricingUnitFormula    PricingUnit = "formula"
	PricingUnitFixedTable PricingUnit = "fixed_table"
	PricingUnitQuoteOnly  PricingUnit = "quote_only"
)

var validPricingUnits = []PricingUnit{
	PricingUnitFormula,
	PricingUnitFixedTable,
	PricingUnitQuoteOnly,
}

// String implements fmt.Stringer.
func (u PricingUnit) String() string {
	return string(u)
}

// IsValid reports whether the value matches a known PricingUnit.
func (u PricingUnit) IsValid() bool {
	for _, candidate := range validPricingUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParsePricingUnit converts raw input into a PricingUnit.
func ParsePricingUnit(value string) (PricingUnit, error) {
	for _, candidate := range validPricingUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pricing unit %q", value)
}

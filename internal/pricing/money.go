package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// Cents converts a dollar amount to integer cents. This is the single place
// dollars cross into cents; templates keep their intermediate math in dollars.
func Cents(dollars float64) int64 {
	return decimal.NewFromFloat(dollars).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// PerUnitCents derives the unit price from an order total. The division drifts:
// unit × quantity does not have to reproduce the total, and callers must not
// "fix" that by recomputing the total from the unit price.
func PerUnitCents(totalCents int64, quantity int) int64 {
	if quantity <= 0 {
		return totalCents
	}
	return decimal.NewFromInt(totalCents).
		Div(decimal.NewFromInt(int64(quantity))).
		Round(0).
		IntPart()
}

// RoundUpTo99 applies the retail ".99" rule: anything under a dollar becomes
// 0.99, everything else becomes the next whole dollar minus a cent. A round
// dollar amount still moves up (13.00 -> 13.99).
func RoundUpTo99(dollars float64) float64 {
	if dollars < 1 {
		return 0.99
	}
	return math.Floor(dollars) + 0.99
}

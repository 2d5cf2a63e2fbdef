package pricing

import "github.com/signforge/signforge-backend/pkg/enums"

type marginTier struct {
	maxQty int
	margin float64
}

// defaultMargin is returned for categories with no tier table. Pricing favors
// availability over strictness here: a miss prices at the house margin rather
// than failing the quote.
const defaultMargin = 0.50

// marginTiers holds the per-category quantity ladders. The first tier whose
// maxQty covers the requested quantity wins; quantities above the last tier
// keep the last tier's margin. The values are data, not a monotonicity
// invariant.
var marginTiers = map[enums.MarginCategory][]marginTier{
	enums.MarginCategoryStickers: {
		{maxQty: 50, margin: 0.80},
		{maxQty: 100, margin: 0.78},
		{maxQty: 250, margin: 0.75},
		{maxQty: 500, margin: 0.72},
		{maxQty: 1000, margin: 0.68},
		{maxQty: 5000, margin: 0.62},
	},
	enums.MarginCategorySigns: {
		{maxQty: 1, margin: 0.65},
		{maxQty: 4, margin: 0.62},
		{maxQty: 9, margin: 0.58},
		{maxQty: 24, margin: 0.55},
		{maxQty: 49, margin: 0.52},
		{maxQty: 100, margin: 0.48},
	},
	enums.MarginCategoryBanners: {
		{maxQty: 1, margin: 0.60},
		{maxQty: 2, margin: 0.58},
		{maxQty: 5, margin: 0.55},
		{maxQty: 10, margin: 0.52},
		{maxQty: 25, margin: 0.48},
		{maxQty: 100, margin: 0.45},
	},
	enums.MarginCategoryPrint: {
		{maxQty: 100, margin: 0.70},
		{maxQty: 250, margin: 0.68},
		{maxQty: 500, margin: 0.65},
		{maxQty: 1000, margin: 0.60},
		{maxQty: 2500, margin: 0.55},
		{maxQty: 10000, margin: 0.50},
	},
	enums.MarginCategoryCanvas: {
		{maxQty: 1, margin: 0.70},
		{maxQty: 2, margin: 0.68},
		{maxQty: 5, margin: 0.65},
		{maxQty: 10, margin: 0.60},
		{maxQty: 25, margin: 0.55},
	},
	enums.MarginCategorySurfaces: {
		{maxQty: 1, margin: 0.62},
		{maxQty: 3, margin: 0.60},
		{maxQty: 6, margin: 0.56},
		{maxQty: 12, margin: 0.52},
		{maxQty: 50, margin: 0.48},
	},
	enums.MarginCategoryVehicle: {
		{maxQty: 1, margin: 0.68},
		{maxQty: 2, margin: 0.65},
		{maxQty: 5, margin: 0.60},
		{maxQty: 10, margin: 0.55},
	},
}

// GetMargin returns the profit margin fraction for the category at the given
// quantity. Always in [0, 1).
func GetMargin(category enums.MarginCategory, quantity int) float64 {
	tiers, ok := marginTiers[category]
	if !ok || len(tiers) == 0 {
		return defaultMargin
	}
	for _, tier := range tiers {
		if tier.maxQty >= quantity {
			return tier.margin
		}
	}
	return tiers[len(tiers)-1].margin
}

// Category price floors in cents. Stickers run cheap enough to deserve a lower
// floor; canvas carries framing stock and gets a higher one.
const (
	minimumGeneralCents int64 = 2499
	minimumStickerCents int64 = 999
	minimumCanvasCents  int64 = 4999
)

func minimumFor(category enums.MarginCategory) int64 {
	switch category {
	case enums.MarginCategoryStickers:
		return minimumStickerCents
	case enums.MarginCategoryCanvas:
		return minimumCanvasCents
	default:
		return minimumGeneralCents
	}
}

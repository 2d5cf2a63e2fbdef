package pricing

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/signforge/signforge-backend/pkg/enums"
)

type fixedTier struct {
	qty   int
	cents int64
}

// outsourcedPrice resolves a product priced from a flat size × quantity table.
// It declines (nil, false) when the product has no table or no entry for the
// resolved size; the dispatcher then falls through to formula pricing.
func outsourcedPrice(req Request) (*Result, bool) {
	if len(req.FixedPrices) == 0 {
		return nil, false
	}

	size := req.SizeLabel
	if size == "" {
		size = fmt.Sprintf("%gx%g", req.WidthIn, req.HeightIn)
	}

	raw, ok := req.FixedPrices[size]
	if !ok || len(raw) == 0 {
		return nil, false
	}

	tiers := make([]fixedTier, 0, len(raw))
	for key, cents := range raw {
		qty, err := strconv.Atoi(key)
		if err != nil || qty <= 0 {
			continue
		}
		tiers = append(tiers, fixedTier{qty: qty, cents: cents})
	}
	if len(tiers) == 0 {
		return nil, false
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].qty < tiers[j].qty })

	// Largest tier not above the requested quantity; below the smallest tier
	// the smallest still applies.
	chosen := tiers[0]
	for _, tier := range tiers {
		if tier.qty > req.Quantity {
			break
		}
		chosen = tier
	}

	total := chosen.cents
	return &Result{
		TotalCents: total,
		UnitCents:  PerUnitCents(total, req.Quantity),
		Currency:   enums.CurrencyUSD,
		Template:   enums.TemplateOutsourced,
		PriceLevel: marginCategoryByCategory[req.Category],
		Breakdown: Breakdown{
			Components: []CostComponent{{Name: "outsourced_total", Cents: total}},
			FinalCents: total,
		},
		Meta: map[string]any{
			"size_label":    size,
			"tier_qty":      chosen.qty,
			"requested_qty": req.Quantity,
		},
	}, true
}

package pricing

import (
	"context"
	"math"

	"github.com/signforge/signforge-backend/pkg/enums"
)

const (
	polePocketPerUnit = 2.00
	windSlitPerUnit   = 1.00
	// Accessories resell at wholesale × 2.5, outside the margin table.
	accessoryMarkup = 2.5
)

// priceBanner covers roll banners. Grommets and hems are included finishing:
// they appear in the metadata but cost nothing. Accessories and the setup fee
// are added after margining; they never pass through the margin table.
func (e *Engine) priceBanner(ctx context.Context, req Request, level enums.MarginCategory) (*Result, error) {
	material, err := e.catalog.FindMaterial(ctx, req.Material)
	if err != nil {
		return nil, err
	}

	area := sqFt(req.WidthIn, req.HeightIn, req.Quantity)
	inkRate := e.catalog.SettingNum(ctx, SettingInkCostPerSqFt, defaultInkPerSqFt)

	finishing := 0.0
	included := []string{}
	if req.Options.Grommets {
		included = append(included, "grommets")
	}
	if req.Options.Hems {
		included = append(included, "heat_welded_hems")
	}
	if req.Options.PolePockets {
		finishing += polePocketPerUnit * float64(req.Quantity)
	}
	if req.Options.WindSlits {
		finishing += windSlitPerUnit * float64(req.Quantity)
	}

	lines := []costLine{
		{name: "material", dollars: area * material.UnitCost},
		{name: "ink", dollars: area * inkRate},
		{name: "finishing", dollars: finishing},
	}

	meta := map[string]any{
		"material":           material.Name,
		"print_sqft":         area,
		"included_finishing": included,
	}

	post := []CostComponent{
		{Name: "setup_fee", Cents: Cents(BannerSetupFee(req.Quantity))},
	}

	if len(req.Accessories) > 0 {
		slugs := make([]string, 0, len(req.Accessories))
		for _, ref := range req.Accessories {
			slugs = append(slugs, ref.Slug)
		}
		items, err := e.catalog.FindHardwareItems(ctx, slugs)
		if err != nil {
			return nil, err
		}
		bySlug := make(map[string]int64, len(items))
		resolved := make([]string, 0, len(items))
		for _, item := range items {
			bySlug[item.Slug] = item.WholesaleCents
			resolved = append(resolved, item.Slug)
		}

		var accessoryCents int64
		for _, ref := range req.Accessories {
			wholesale, ok := bySlug[ref.Slug]
			if !ok {
				continue
			}
			qty := ref.Quantity
			if qty < 1 {
				qty = 1
			}
			accessoryCents += int64(math.Round(float64(wholesale)*accessoryMarkup)) * int64(qty)
		}
		if accessoryCents > 0 {
			post = append(post, CostComponent{Name: "accessories", Cents: accessoryCents})
		}
		meta["accessories"] = resolved
	}

	return e.finish(enums.TemplateBanner, level, req.Quantity, lines, 1.0, post, meta), nil
}

package pricing

import (
	"context"
	"math"

	"github.com/signforge/signforge-backend/pkg/enums"
)

const (
	// Print-then-cut products get a cutting tolerance added to each dimension.
	stickerBleedIn = 0.25
	// Cutter rows nest across the usable width of a 54" roll.
	cutterRollWidthIn = 53.0
	// Flat cutting time cost per started batch of 100 pieces.
	cutTimeCostPer100 = 5.00
	// Waste cost per cutter row for die-cut jobs.
	dieCutRowCost = 0.50
)

func stickerFamily(category enums.ProductCategory) bool {
	return category == enums.ProductCategoryStickers || category == enums.ProductCategoryLabels
}

// priceWideFormat covers printed roll vinyl: stickers, labels, window/wall/
// floor/vehicle graphics, and posters. The material markup multiplies the
// margined price, not the cost, so premium substrates keep their retail
// uplift.
func (e *Engine) priceWideFormat(ctx context.Context, req Request, level enums.MarginCategory) (*Result, error) {
	material, err := e.catalog.FindMaterial(ctx, req.Material)
	if err != nil {
		return nil, err
	}

	bleed := 0.0
	if stickerFamily(req.Category) {
		bleed = stickerBleedIn
	}
	pieceW := req.WidthIn + bleed
	pieceH := req.HeightIn + bleed
	area := sqFt(pieceW, pieceH, req.Quantity)

	inkRate := e.catalog.SettingNum(ctx, SettingInkCostPerSqFt, defaultInkPerSqFt)

	lines := []costLine{
		{name: "material", dollars: area * material.UnitCost},
		{name: "ink", dollars: area * inkRate},
		{name: "cutting", dollars: math.Ceil(float64(req.Quantity)/100) * cutTimeCostPer100},
	}

	meta := map[string]any{
		"material":   material.Name,
		"print_sqft": area,
		"bleed_in":   bleed,
	}

	if req.Options.Cut == CutDie {
		perRow := int(cutterRollWidthIn / pieceW)
		if perRow < 1 {
			perRow = 1
		}
		rows := (req.Quantity + perRow - 1) / perRow
		lines = append(lines, costLine{name: "die_cut_waste", dollars: float64(rows) * dieCutRowCost})
		meta["cutter_rows"] = rows
	}

	if req.Options.Lamination != "" {
		laminate, err := e.catalog.FindMaterial(ctx, req.Options.Lamination)
		if err != nil {
			return nil, err
		}
		lines = append(lines, costLine{name: "lamination", dollars: area * laminate.UnitCost})
		meta["lamination"] = laminate.Name
	}

	multiplier := MaterialMarkup(material.Name)
	return e.finish(enums.TemplateWideFormat, level, req.Quantity, lines, multiplier, nil, meta), nil
}

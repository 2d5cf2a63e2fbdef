package pricing

import (
	"context"

	"github.com/signforge/signforge-backend/pkg/enums"
)

const (
	transferTapeAlias = "transfer-tape"

	cutRatePerLinearFt = 0.40
	weedingPerSqFt     = 1.50
)

// priceCutVinyl covers unprinted cut vinyl: decals and lettering. No ink, no
// lamination; cutting scales with perimeter, weeding and transfer tape with
// area.
func (e *Engine) priceCutVinyl(ctx context.Context, req Request, level enums.MarginCategory) (*Result, error) {
	material, err := e.catalog.FindMaterial(ctx, req.Material)
	if err != nil {
		return nil, err
	}
	tape, err := e.catalog.FindMaterial(ctx, transferTapeAlias)
	if err != nil {
		return nil, err
	}

	area := sqFt(req.WidthIn, req.HeightIn, req.Quantity)
	perimeterFt := 2 * (req.WidthIn + req.HeightIn) / 12 * float64(req.Quantity)

	lines := []costLine{
		{name: "material", dollars: area * material.UnitCost},
		{name: "cutting", dollars: perimeterFt * cutRatePerLinearFt},
		{name: "weeding", dollars: area * weedingPerSqFt},
		{name: "transfer_tape", dollars: area * tape.UnitCost},
	}

	meta := map[string]any{
		"material":     material.Name,
		"vinyl_sqft":   area,
		"perimeter_ft": perimeterFt,
	}

	multiplier := MaterialMarkup(material.Name)
	return e.finish(enums.TemplateCutVinyl, level, req.Quantity, lines, multiplier, nil, meta), nil
}

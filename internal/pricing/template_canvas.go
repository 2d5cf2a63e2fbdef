package pricing

import (
	"context"

	"github.com/signforge/signforge-backend/pkg/enums"
)

// priceCanvas covers stretched and rolled canvas prints. A stretched frame is
// two bars per dimension, each dimension interpolated independently against
// the frame-bar cost table.
func (e *Engine) priceCanvas(ctx context.Context, req Request, level enums.MarginCategory) (*Result, error) {
	canvas, err := e.catalog.FindMaterial(ctx, req.Material)
	if err != nil {
		return nil, err
	}

	area := sqFt(req.WidthIn, req.HeightIn, req.Quantity)
	inkRate := e.catalog.SettingNum(ctx, SettingInkCostPerSqFt, defaultInkPerSqFt)

	lines := []costLine{
		{name: "canvas", dollars: area * canvas.UnitCost},
		{name: "ink", dollars: area * inkRate},
	}

	meta := map[string]any{
		"material":   canvas.Name,
		"print_sqft": area,
		"frame":      string(req.Options.Frame),
	}

	if req.Options.Frame.HasBars() {
		perPiece := 2*FrameBarCost(req.WidthIn) + 2*FrameBarCost(req.HeightIn)
		lines = append(lines, costLine{name: "frame", dollars: perPiece * float64(req.Quantity)})
		meta["frame_cost_per_piece"] = perPiece
	}

	if req.Options.Lamination != "" {
		laminate, err := e.catalog.FindMaterial(ctx, req.Options.Lamination)
		if err != nil {
			return nil, err
		}
		lines = append(lines, costLine{name: "lamination", dollars: area * laminate.UnitCost})
		meta["lamination"] = laminate.Name
	}

	return e.finish(enums.TemplateCanvas, level, req.Quantity, lines, 1.0, nil, meta), nil
}

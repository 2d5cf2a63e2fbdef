package pricing

import (
	"context"
	"math"

	"github.com/signforge/signforge-backend/pkg/db/models"
	"github.com/signforge/signforge-backend/pkg/enums"
)

const (
	// Bleed per side for pieces imposed onto a parent sheet.
	smallFormatBleedPerSideIn = 0.125

	scoringPerPiece        = 0.05
	bindingSaddlePerPiece  = 0.35
	bindingSpiralPerPiece  = 1.25
	bindingPerfectPerPiece = 2.50
	roundedCornerEach      = 0.02
	holePunchPerPiece      = 0.05
	foldPerPiece           = 0.03
)

// parentSheetFor picks the press sheet a paper stock runs on. NCR forms run
// on 11x17; everything else on 12x18.
func parentSheetFor(family string) (float64, float64) {
	if family == models.MaterialFamilyNCR {
		return 11, 17
	}
	return 12, 18
}

// priceSmallFormat covers digital press work: business cards, flyers,
// brochures, postcards, NCR forms. Paper is costed per parent sheet via
// imposition; ink is per finished piece per printed pass; lamination coats
// whole parent sheets before cutting.
func (e *Engine) priceSmallFormat(ctx context.Context, req Request, level enums.MarginCategory) (*Result, error) {
	paper, err := e.catalog.FindMaterial(ctx, req.Material)
	if err != nil {
		return nil, err
	}

	parentW, parentH := parentSheetFor(paper.Family)
	pieceW := req.WidthIn + 2*smallFormatBleedPerSideIn
	pieceH := req.HeightIn + 2*smallFormatBleedPerSideIn
	perSheet := ImpositionCount(parentW, parentH, pieceW, pieceH)
	sheets := int(math.Ceil(float64(req.Quantity) / float64(perSheet)))

	passes := 1.0
	if req.Options.DoubleSided {
		passes = 2.0
	}

	clickRate := e.catalog.SettingNum(ctx, SettingInkCostPerClick, defaultInkPerClick)

	lines := []costLine{
		{name: "paper", dollars: float64(sheets) * paper.UnitCost},
		{name: "ink", dollars: clickRate * float64(req.Quantity) * passes},
	}

	meta := map[string]any{
		"material":         paper.Name,
		"parent_sheet":     []float64{parentW, parentH},
		"pieces_per_sheet": perSheet,
		"sheets":           sheets,
		"passes":           int(passes),
	}

	if req.Options.Lamination != "" {
		laminate, err := e.catalog.FindMaterial(ctx, req.Options.Lamination)
		if err != nil {
			return nil, err
		}
		sheetSqFt := parentW * parentH / sqInPerSqFt
		lines = append(lines, costLine{
			name:    "lamination",
			dollars: sheetSqFt * float64(sheets) * passes * laminate.UnitCost,
		})
		meta["lamination"] = laminate.Name
	}

	perPiece := 0.0
	if req.Options.Scoring {
		perPiece += scoringPerPiece
	}
	switch req.Options.Binding {
	case BindingSaddle:
		perPiece += bindingSaddlePerPiece
	case BindingSpiral:
		perPiece += bindingSpiralPerPiece
	case BindingPerfect:
		perPiece += bindingPerfectPerPiece
	}
	if req.Options.RoundedCorners {
		perPiece += 4 * roundedCornerEach
	}
	if req.Options.HolePunch {
		perPiece += holePunchPerPiece
	}
	if req.Options.Folds > 0 {
		perPiece += float64(req.Options.Folds) * foldPerPiece
	}
	if perPiece > 0 {
		lines = append(lines, costLine{name: "finishing", dollars: perPiece * float64(req.Quantity)})
	}

	return e.finish(enums.TemplateSmallFormat, level, req.Quantity, lines, 1.0, nil, meta), nil
}

package pricing

import (
	"context"

	"github.com/signforge/signforge-backend/pkg/enums"
)

const (
	// Face vinyl laminated onto board substrates.
	faceVinylAlias = "print-vinyl"
	// Flat cutting labor per finished piece.
	boardCutLaborPerPiece = 2.50
)

// applicationLaborRate returns the per-piece face-application labor for one
// side, banded by piece area.
func applicationLaborRate(pieceSqFt float64) float64 {
	switch {
	case pieceSqFt <= 2:
		return 1.50
	case pieceSqFt <= 6:
		return 3.00
	default:
		return 5.00
	}
}

// priceRigidBoard covers board signs: substrate cost amortized over how many
// pieces nest on a 48x96 sheet, plus face vinyl, ink, and labor scaled by
// printed sides.
func (e *Engine) priceRigidBoard(ctx context.Context, req Request, level enums.MarginCategory) (*Result, error) {
	board, err := e.catalog.FindMaterial(ctx, req.Material)
	if err != nil {
		return nil, err
	}
	face, err := e.catalog.FindMaterial(ctx, faceVinylAlias)
	if err != nil {
		return nil, err
	}

	sides := 1.0
	if req.Options.DoubleSided {
		sides = 2.0
	}

	perSheet := BoardNestCount(req.WidthIn, req.HeightIn)
	boardCost := board.UnitCost / float64(perSheet) * float64(req.Quantity)

	area := sqFt(req.WidthIn, req.HeightIn, req.Quantity)
	inkRate := e.catalog.SettingNum(ctx, SettingInkCostPerSqFt, defaultInkPerSqFt)

	pieceSqFt := req.WidthIn * req.HeightIn / sqInPerSqFt
	labor := boardCutLaborPerPiece*float64(req.Quantity) +
		applicationLaborRate(pieceSqFt)*sides*float64(req.Quantity)

	lines := []costLine{
		{name: "board", dollars: boardCost},
		{name: "face_vinyl", dollars: area * face.UnitCost * sides},
		{name: "ink", dollars: area * inkRate * sides},
		{name: "labor", dollars: labor},
	}

	meta := map[string]any{
		"material":         board.Name,
		"face_vinyl":       face.Name,
		"pieces_per_sheet": perSheet,
		"sides":            int(sides),
		"piece_sqft":       pieceSqFt,
	}

	return e.finish(enums.TemplateRigidBoard, level, req.Quantity, lines, 1.0, nil, meta), nil
}

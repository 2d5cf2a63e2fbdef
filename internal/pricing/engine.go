package pricing

import (
	"context"
	"fmt"

	"github.com/signforge/signforge-backend/pkg/db/models"
	"github.com/signforge/signforge-backend/pkg/enums"
	pkgerrors "github.com/signforge/signforge-backend/pkg/errors"
)

// Setting keys the engine reads, with their hardcoded fallbacks. Missing or
// malformed settings degrade to the fallback; they never fail a quote.
const (
	SettingInkCostPerSqFt  = "ink_cost_per_sqft"
	SettingInkCostPerClick = "ink_cost_per_click"

	defaultInkPerSqFt  = 0.035
	defaultInkPerClick = 0.06
)

// Catalog is the read-only store the engine resolves materials, accessories,
// and tunable settings from at request time.
type Catalog interface {
	// FindMaterial resolves a display name or configurator alias to an active
	// material. A miss is a client-correctable error (422-class): a wrong
	// default here would silently mis-price orders.
	FindMaterial(ctx context.Context, nameOrAlias string) (*models.Material, error)
	// FindHardwareItems returns the active hardware rows for the given slugs.
	FindHardwareItems(ctx context.Context, slugs []string) ([]models.HardwareItem, error)
	// SettingNum returns the parsed numeric setting or fallback when absent.
	SettingNum(ctx context.Context, key string, fallback float64) float64
}

// Engine computes retail prices. It is stateless and safe for concurrent use;
// every call resolves its own catalog snapshot.
type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	return &Engine{catalog: catalog}, nil
}

var templateByCategory = map[enums.ProductCategory]enums.Template{
	enums.ProductCategoryStickers:        enums.TemplateWideFormat,
	enums.ProductCategoryLabels:          enums.TemplateWideFormat,
	enums.ProductCategoryWindowGraphics:  enums.TemplateWideFormat,
	enums.ProductCategoryWallGraphics:    enums.TemplateWideFormat,
	enums.ProductCategoryFloorGraphics:   enums.TemplateWideFormat,
	enums.ProductCategoryVehicleGraphics: enums.TemplateWideFormat,
	enums.ProductCategoryPosters:         enums.TemplateWideFormat,
	enums.ProductCategoryYardSigns:       enums.TemplateRigidBoard,
	enums.ProductCategoryRigidSigns:      enums.TemplateRigidBoard,
	enums.ProductCategoryBanners:         enums.TemplateBanner,
	enums.ProductCategoryBusinessCards:   enums.TemplateSmallFormat,
	enums.ProductCategoryFlyers:          enums.TemplateSmallFormat,
	enums.ProductCategoryBrochures:       enums.TemplateSmallFormat,
	enums.ProductCategoryPostcards:       enums.TemplateSmallFormat,
	enums.ProductCategoryNCRForms:        enums.TemplateSmallFormat,
	enums.ProductCategoryCanvasPrints:    enums.TemplateCanvas,
	enums.ProductCategoryDecals:          enums.TemplateCutVinyl,
	enums.ProductCategoryLettering:       enums.TemplateCutVinyl,
}

var marginCategoryByCategory = map[enums.ProductCategory]enums.MarginCategory{
	enums.ProductCategoryStickers:        enums.MarginCategoryStickers,
	enums.ProductCategoryLabels:          enums.MarginCategoryStickers,
	enums.ProductCategoryDecals:          enums.MarginCategoryStickers,
	enums.ProductCategoryLettering:       enums.MarginCategorySigns,
	enums.ProductCategoryWindowGraphics:  enums.MarginCategorySurfaces,
	enums.ProductCategoryWallGraphics:    enums.MarginCategorySurfaces,
	enums.ProductCategoryFloorGraphics:   enums.MarginCategorySurfaces,
	enums.ProductCategoryVehicleGraphics: enums.MarginCategoryVehicle,
	enums.ProductCategoryPosters:         enums.MarginCategoryPrint,
	enums.ProductCategoryYardSigns:       enums.MarginCategorySigns,
	enums.ProductCategoryRigidSigns:      enums.MarginCategorySigns,
	enums.ProductCategoryBanners:         enums.MarginCategoryBanners,
	enums.ProductCategoryBusinessCards:   enums.MarginCategoryPrint,
	enums.ProductCategoryFlyers:          enums.MarginCategoryPrint,
	enums.ProductCategoryBrochures:       enums.MarginCategoryPrint,
	enums.ProductCategoryPostcards:       enums.MarginCategoryPrint,
	enums.ProductCategoryNCRForms:        enums.MarginCategoryPrint,
	enums.ProductCategoryCanvasPrints:    enums.MarginCategoryCanvas,
}

// CalculatePrice turns a product selection into a retail price with an
// auditable breakdown. Evaluation order: quote-only short-circuit, outsourced
// table lookup, then the category's formula template.
func (e *Engine) CalculatePrice(ctx context.Context, req Request) (*Result, error) {
	if req.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	if req.Unit == enums.PricingUnitQuoteOnly {
		return quoteOnlyResult(req), nil
	}

	if result, ok := outsourcedPrice(req); ok {
		return result, nil
	}

	template, ok := templateByCategory[req.Category]
	if !ok {
		return nil, pkgerrors.Newf(pkgerrors.CodeUnprocessable, "no pricing template for category %q", req.Category)
	}
	level := marginCategoryByCategory[req.Category]

	if req.WidthIn <= 0 || req.HeightIn <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "width and height are required for formula pricing")
	}

	switch template {
	case enums.TemplateWideFormat:
		return e.priceWideFormat(ctx, req, level)
	case enums.TemplateRigidBoard:
		return e.priceRigidBoard(ctx, req, level)
	case enums.TemplateBanner:
		return e.priceBanner(ctx, req, level)
	case enums.TemplateSmallFormat:
		return e.priceSmallFormat(ctx, req, level)
	case enums.TemplateCanvas:
		return e.priceCanvas(ctx, req, level)
	case enums.TemplateCutVinyl:
		return e.priceCutVinyl(ctx, req, level)
	default:
		return nil, pkgerrors.Newf(pkgerrors.CodeUnprocessable, "no pricing template for category %q", req.Category)
	}
}

func quoteOnlyResult(req Request) *Result {
	return &Result{
		TotalCents: 0,
		UnitCents:  0,
		Currency:   enums.CurrencyUSD,
		Template:   enums.TemplateQuoteOnly,
		PriceLevel: marginCategoryByCategory[req.Category],
		Breakdown:  Breakdown{},
		Meta:       map[string]any{"note": "contact for quote"},
	}
}

// finish applies the shared tail of every formula template: sum the cost
// lines, divide by (1 - margin), apply the retail multiplier, round up to
// .99, enforce the category floor, then stack the unmargined post lines
// (setup fees, accessory resale) on top.
func (e *Engine) finish(
	template enums.Template,
	level enums.MarginCategory,
	quantity int,
	lines []costLine,
	multiplier float64,
	post []CostComponent,
	meta map[string]any,
) *Result {
	var cost float64
	components := make([]CostComponent, 0, len(lines)+len(post))
	for _, line := range lines {
		cost += line.dollars
		components = append(components, CostComponent{Name: line.name, Cents: Cents(line.dollars)})
	}

	margin := GetMargin(level, quantity)
	margined := cost / (1 - margin)
	retail := RoundUpTo99(margined * multiplier)

	totalCents := Cents(retail)
	if floor := minimumFor(level); totalCents < floor {
		totalCents = floor
	}

	for _, extra := range post {
		totalCents += extra.Cents
		components = append(components, extra)
	}

	return &Result{
		TotalCents: totalCents,
		UnitCents:  PerUnitCents(totalCents, quantity),
		Currency:   enums.CurrencyUSD,
		Template:   template,
		PriceLevel: level,
		Breakdown: Breakdown{
			Components:     components,
			MarginFraction: margin,
			Multiplier:     multiplier,
			FinalCents:     totalCents,
		},
		Meta: meta,
	}
}

package controllers

import (
	"net/http"
	"time"

	"github.com/signforge/signforge-backend/api/responses"
	"github.com/signforge/signforge-backend/api/validators"
	"github.com/signforge/signforge-backend/internal/catalog"
	"github.com/signforge/signforge-backend/internal/pricing"
	"github.com/signforge/signforge-backend/pkg/config"
	"github.com/signforge/signforge-backend/pkg/enums"
	pkgerrors "github.com/signforge/signforge-backend/pkg/errors"
	"github.com/signforge/signforge-backend/pkg/logger"
	"github.com/signforge/signforge-backend/pkg/metrics"
)

// QuoteCreate prices a product selection. Requests may reference a catalog SKU
// (which supplies category, pricing unit, fixed dimensions, and the default
// material) or describe an ad-hoc job by category alone.
func QuoteCreate(engine *pricing.Engine, cat catalog.Service, cfg *config.Config, quoteMetrics *metrics.QuoteMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil || cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			quoteMetrics.IncFailure(string(pkgerrors.CodeValidation))
			return
		}

		if max := cfg.Quote.MaxQuantity; max > 0 && payload.Quantity > max {
			err := pkgerrors.Newf(pkgerrors.CodeValidation, "quantity cannot exceed %d", max)
			responses.WriteError(r.Context(), logg, w, err)
			quoteMetrics.IncFailure(string(pkgerrors.CodeValidation))
			return
		}

		input, err := payload.toPricingRequest(r, cat)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			quoteMetrics.IncFailure(failureCode(err))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithField(ctx, "category", string(input.Category))
		}

		start := time.Now()
		result, err := engine.CalculatePrice(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			quoteMetrics.IncFailure(failureCode(err))
			return
		}

		quoteMetrics.ObserveDuration(string(result.Template), time.Since(start))
		quoteMetrics.IncSuccess(string(result.Template))

		responses.WriteSuccess(w, newQuoteResponse(result))
	}
}

type quoteRequest struct {
	SKU         string             `json:"sku"`
	Category    string             `json:"category"`
	WidthIn     float64            `json:"width_in" validate:"omitempty,gt=0"`
	HeightIn    float64            `json:"height_in" validate:"omitempty,gt=0"`
	Quantity    int                `json:"quantity" validate:"required,min=1"`
	Material    string             `json:"material"`
	SizeLabel   string             `json:"size_label"`
	Options     quoteOptions       `json:"options"`
	Accessories []accessoryPayload `json:"accessories" validate:"omitempty,dive"`
}

type quoteOptions struct {
	DoubleSided    bool   `json:"double_sided"`
	Lamination     string `json:"lamination"`
	Cut            string `json:"cut" validate:"omitempty,oneof=none kiss_cut die_cut"`
	Binding        string `json:"binding" validate:"omitempty,oneof=none saddle_stitch spiral perfect"`
	Scoring        bool   `json:"scoring"`
	RoundedCorners bool   `json:"rounded_corners"`
	HolePunch      bool   `json:"hole_punch"`
	Folds          int    `json:"folds" validate:"omitempty,min=0,max=4"`
	Frame          string `json:"frame" validate:"omitempty,oneof=none rolled stretched_075 stretched_150"`
	Grommets       bool   `json:"grommets"`
	Hems           bool   `json:"hems"`
	PolePockets    bool   `json:"pole_pockets"`
	WindSlits      bool   `json:"wind_slits"`
}

type accessoryPayload struct {
	Slug     string `json:"slug" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

func (q quoteRequest) toPricingRequest(r *http.Request, cat catalog.Service) (pricing.Request, error) {
	input := pricing.Request{
		Unit:      enums.PricingUnitFormula,
		WidthIn:   q.WidthIn,
		HeightIn:  q.HeightIn,
		Quantity:  q.Quantity,
		Material:  q.Material,
		SizeLabel: q.SizeLabel,
		Options: pricing.Options{
			DoubleSided:    q.Options.DoubleSided,
			Lamination:     q.Options.Lamination,
			Cut:            pricing.CutType(q.Options.Cut),
			Binding:        pricing.BindingType(q.Options.Binding),
			Scoring:        q.Options.Scoring,
			RoundedCorners: q.Options.RoundedCorners,
			HolePunch:      q.Options.HolePunch,
			Folds:          q.Options.Folds,
			Frame:          pricing.FrameType(q.Options.Frame),
			Grommets:       q.Options.Grommets,
			Hems:           q.Options.Hems,
			PolePockets:    q.Options.PolePockets,
			WindSlits:      q.Options.WindSlits,
		},
	}
	for _, acc := range q.Accessories {
		input.Accessories = append(input.Accessories, pricing.AccessoryRef{
			Slug:     acc.Slug,
			Quantity: acc.Quantity,
		})
	}

	if q.SKU == "" {
		category, err := enums.ParseProductCategory(q.Category)
		if err != nil {
			return pricing.Request{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		input.Category = category
		return input, nil
	}

	product, err := cat.GetProduct(r.Context(), q.SKU)
	if err != nil {
		return pricing.Request{}, err
	}

	input.Category = product.Category
	input.Unit = product.PricingUnit
	input.FixedPrices = product.FixedPrices
	if q.Quantity < product.MinQuantity {
		return pricing.Request{}, pkgerrors.Newf(pkgerrors.CodeValidation, "quantity below product minimum of %d", product.MinQuantity)
	}
	if input.WidthIn == 0 && product.WidthIn != nil {
		input.WidthIn = *product.WidthIn
	}
	if input.HeightIn == 0 && product.HeightIn != nil {
		input.HeightIn = *product.HeightIn
	}
	if input.SizeLabel == "" && product.SizeLabel != nil {
		input.SizeLabel = *product.SizeLabel
	}
	if input.Material == "" && product.DefaultMaterial != nil {
		input.Material = *product.DefaultMaterial
	}
	return input, nil
}

type quoteResponse struct {
	TotalCents int64          `json:"total_cents"`
	UnitCents  int64          `json:"unit_cents"`
	Currency   string         `json:"currency"`
	Template   string         `json:"template"`
	PriceLevel string         `json:"price_level"`
	Breakdown  quoteBreakdown `json:"breakdown"`
	Meta       map[string]any `json:"meta,omitempty"`
}

type quoteBreakdown struct {
	Components     []quoteComponent `json:"components"`
	MarginFraction float64          `json:"margin_fraction"`
	Multiplier     float64          `json:"multiplier"`
	FinalCents     int64            `json:"final_cents"`
}

type quoteComponent struct {
	Name  string `json:"name"`
	Cents int64  `json:"cents"`
}

func newQuoteResponse(result *pricing.Result) quoteResponse {
	components := make([]quoteComponent, len(result.Breakdown.Components))
	for i, c := range result.Breakdown.Components {
		components[i] = quoteComponent{Name: c.Name, Cents: c.Cents}
	}
	return quoteResponse{
		TotalCents: result.TotalCents,
		UnitCents:  result.UnitCents,
		Currency:   string(result.Currency),
		Template:   string(result.Template),
		PriceLevel: string(result.PriceLevel),
		Breakdown: quoteBreakdown{
			Components:     components,
			MarginFraction: result.Breakdown.MarginFraction,
			Multiplier:     result.Breakdown.Multiplier,
			FinalCents:     result.Breakdown.FinalCents,
		},
		Meta: result.Meta,
	}
}

func failureCode(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		return string(typed.Code())
	}
	return string(pkgerrors.CodeInternal)
}

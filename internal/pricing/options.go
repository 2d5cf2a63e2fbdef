package pricing

import (
	"github.com/signforge/signforge-backend/pkg/enums"
	"github.com/signforge/signforge-backend/pkg/types"
)

// CutType selects the cutting treatment for wide-format pieces.
type CutType string

const (
	CutNone CutType = "none"
	CutKiss CutType = "kiss_cut"
	CutDie  CutType = "die_cut"
)

// FrameType selects the canvas finishing. Only stretched variants carry frame
// bar cost.
type FrameType string

const (
	FrameNone         FrameType = "none"
	FrameRolled       FrameType = "rolled"
	FrameStretched075 FrameType = "stretched_075"
	FrameStretched150 FrameType = "stretched_150"
)

func (f FrameType) HasBars() bool {
	return f != "" && f != FrameNone && f != FrameRolled
}

// BindingType selects the small-format binding style.
type BindingType string

const (
	BindingNone    BindingType = "none"
	BindingSaddle  BindingType = "saddle_stitch"
	BindingSpiral  BindingType = "spiral"
	BindingPerfect BindingType = "perfect"
)

// Options carries the per-template knobs. Each template reads only the fields
// that apply to it; zero values mean "off".
type Options struct {
	// DoubleSided doubles ink (and face vinyl for rigid boards, print passes
	// for small format).
	DoubleSided bool
	// Lamination is a laminate material id/alias; empty means unlaminated.
	Lamination string
	// Cut applies to wide-format pieces; die cutting adds per-row waste cost.
	Cut CutType
	// Binding, Scoring, RoundedCorners, HolePunch, and Folds are small-format
	// finishing add-ons, summed per piece.
	Binding        BindingType
	Scoring        bool
	RoundedCorners bool
	HolePunch      bool
	Folds          int
	// Frame applies to canvas. Grommets and Hems are included banner
	// finishing (tracked, zero cost); PolePockets and WindSlits carry
	// per-unit surcharges.
	Frame       FrameType
	Grommets    bool
	Hems        bool
	PolePockets bool
	WindSlits   bool
}

// AccessoryRef points at a hardware item resold with the order.
type AccessoryRef struct {
	Slug     string
	Quantity int
}

// Request is the engine input. Dimensions are inches; fixed-size products have
// them filled in by the caller from the product row before dispatch.
type Request struct {
	Category    enums.ProductCategory
	Unit        enums.PricingUnit
	WidthIn     float64
	HeightIn    float64
	Quantity    int
	Material    string
	Options     Options
	Accessories []AccessoryRef
	SizeLabel   string
	FixedPrices types.FixedPriceTable
}

package pricing

import "strings"

const sqInPerSqFt = 144.0

// Rigid board jobs nest onto a standard 4x8 ft parent sheet.
const (
	boardSheetWidthIn  = 48.0
	boardSheetHeightIn = 96.0
)

func sqFt(widthIn, heightIn float64, quantity int) float64 {
	return widthIn * heightIn * float64(quantity) / sqInPerSqFt
}

// ImpositionCount returns how many whole pieces fit on one parent sheet,
// trying both the given orientation and the 90°-rotated one. Never less than
// one: an oversize piece still consumes a full sheet.
func ImpositionCount(sheetW, sheetH, pieceW, pieceH float64) int {
	count := fitCount(sheetW, sheetH, pieceW, pieceH)
	if rotated := fitCount(sheetW, sheetH, pieceH, pieceW); rotated > count {
		count = rotated
	}
	if count < 1 {
		count = 1
	}
	return count
}

func fitCount(sheetW, sheetH, pieceW, pieceH float64) int {
	if pieceW <= 0 || pieceH <= 0 {
		return 0
	}
	return int(sheetW/pieceW) * int(sheetH/pieceH)
}

// BoardNestCount is imposition against the fixed 48x96 board parent.
func BoardNestCount(pieceW, pieceH float64) int {
	return ImpositionCount(boardSheetWidthIn, boardSheetHeightIn, pieceW, pieceH)
}

type frameBarPoint struct {
	sizeIn float64
	cost   float64
}

// Per-bar cost breakpoints for canvas stretcher bars, sorted by size.
var frameBarCosts = []frameBarPoint{
	{sizeIn: 8, cost: 4.50},
	{sizeIn: 12, cost: 5.75},
	{sizeIn: 16, cost: 7.00},
	{sizeIn: 20, cost: 8.50},
	{sizeIn: 24, cost: 10.00},
	{sizeIn: 30, cost: 12.25},
	{sizeIn: 36, cost: 14.50},
	{sizeIn: 48, cost: 19.00},
	{sizeIn: 60, cost: 24.00},
	{sizeIn: 72, cost: 29.50},
}

// FrameBarCost returns the cost of a single stretcher bar for the given linear
// size. Exact breakpoints return the table value; sizes in between are
// linearly interpolated; sizes outside the table clamp to its ends.
func FrameBarCost(sizeIn float64) float64 {
	first := frameBarCosts[0]
	if sizeIn <= first.sizeIn {
		return first.cost
	}
	last := frameBarCosts[len(frameBarCosts)-1]
	if sizeIn >= last.sizeIn {
		return last.cost
	}
	for i := 1; i < len(frameBarCosts); i++ {
		upper := frameBarCosts[i]
		if sizeIn > upper.sizeIn {
			continue
		}
		if sizeIn == upper.sizeIn {
			return upper.cost
		}
		lower := frameBarCosts[i-1]
		ratio := (sizeIn - lower.sizeIn) / (upper.sizeIn - lower.sizeIn)
		return lower.cost + ratio*(upper.cost-lower.cost)
	}
	return last.cost
}

type materialMarkup struct {
	keyword string
	factor  float64
}

// Premium substrates retail above what their raw area cost implies. The factor
// multiplies the margined price, not the cost.
var materialMarkups = []materialMarkup{
	{keyword: "holographic", factor: 1.60},
	{keyword: "glitter", factor: 1.50},
	{keyword: "glow", factor: 1.50},
	{keyword: "reflective", factor: 1.45},
	{keyword: "metallic", factor: 1.35},
	{keyword: "clear", factor: 1.15},
}

// MaterialMarkup returns the retail multiplier for the material name, keyed on
// a case-insensitive substring match. Plain materials return 1.
func MaterialMarkup(name string) float64 {
	lowered := strings.ToLower(name)
	for _, m := range materialMarkups {
		if strings.Contains(lowered, m.keyword) {
			return m.factor
		}
	}
	return 1.0
}

// BannerSetupFee returns the flat per-order fee covering setup labor. It is
// never margined; low-volume orders carry more of the fixed cost.
func BannerSetupFee(quantity int) float64 {
	switch {
	case quantity <= 2:
		return 15.00
	case quantity <= 5:
		return 10.00
	default:
		return 5.00
	}
}

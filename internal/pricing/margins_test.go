package pricing

import (
	"testing"

	"github.com/signforge/signforge-backend/pkg/enums"
)

func TestGetMarginTierSelection(t *testing.T) {
	cases := []struct {
		category enums.MarginCategory
		qty      int
		want     float64
	}{
		{enums.MarginCategoryStickers, 1, 0.80},
		{enums.MarginCategoryStickers, 50, 0.80},
		{enums.MarginCategoryStickers, 51, 0.78},
		{enums.MarginCategoryStickers, 500, 0.72},
		{enums.MarginCategoryStickers, 5000, 0.62},
		{enums.MarginCategoryStickers, 50000, 0.62},
		{enums.MarginCategorySigns, 1, 0.65},
		{enums.MarginCategorySigns, 10, 0.55},
		{enums.MarginCategoryBanners, 3, 0.55},
		{enums.MarginCategoryCanvas, 2, 0.68},
		{enums.MarginCategoryVehicle, 100, 0.55},
	}
	for _, tc := range cases {
		if got := GetMargin(tc.category, tc.qty); got != tc.want {
			t.Errorf("GetMargin(%s, %d) = %v, want %v", tc.category, tc.qty, got, tc.want)
		}
	}
}

func TestGetMarginUnknownCategory(t *testing.T) {
	if got := GetMargin(enums.MarginCategory("mystery"), 10); got != defaultMargin {
		t.Fatalf("unknown category margin = %v, want %v", got, defaultMargin)
	}
}

func TestGetMarginBounds(t *testing.T) {
	for category, tiers := range marginTiers {
		for _, tier := range tiers {
			if tier.margin < 0 || tier.margin >= 1 {
				t.Errorf("%s tier %d margin %v outside [0, 1)", category, tier.maxQty, tier.margin)
			}
		}
	}
}

func TestMinimumFor(t *testing.T) {
	if got := minimumFor(enums.MarginCategoryStickers); got != minimumStickerCents {
		t.Errorf("sticker floor = %d", got)
	}
	if got := minimumFor(enums.MarginCategoryCanvas); got != minimumCanvasCents {
		t.Errorf("canvas floor = %d", got)
	}
	if got := minimumFor(enums.MarginCategoryBanners); got != minimumGeneralCents {
		t.Errorf("banner floor = %d", got)
	}
}

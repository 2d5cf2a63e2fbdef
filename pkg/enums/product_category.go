package enums

import "fmt"

// ProductCategory represents the canonical product categories supported by the
// storefront catalog.
type ProductCategory string

const (
	ProductCategoryStickers        ProductCategory = "stickers"
	ProductCategoryLabels          ProductCategory = "labels"
	ProductCategoryDecals          ProductCategory = "decals"
	ProductCategoryLettering       ProductCategory = "lettering"
	ProductCategoryWindowGraphics  ProductCategory = "window_graphics"
	ProductCategoryWallGraphics    ProductCategory = "wall_graphics"
	ProductCategoryFloorGraphics   ProductCategory = "floor_graphics"
	ProductCategoryVehicleGraphics ProductCategory = "vehicle_graphics"
	ProductCategoryPosters         ProductCategory = "posters"
	ProductCategoryYardSigns       ProductCategory = "yard_signs"
	ProductCategoryRigidSigns      ProductCategory = "rigid_signs"
	ProductCategoryBanners         ProductCategory = "banners"
	ProductCategoryBusinessCards   ProductCategory = "business_cards"
	ProductCategoryFlyers          ProductCategory = "flyers"
	ProductCategoryBrochures       ProductCategory = "brochures"
	ProductCategoryPostcards       ProductCategory = "postcards"
	ProductCategoryNCRForms        ProductCategory = "ncr_forms"
	ProductCategoryCanvasPrints    ProductCategory = "canvas_prints"
)

var validProductCategories = []ProductCategory{
	ProductCategoryStickers,
	ProductCategoryLabels,
	ProductCategoryDecals,
	ProductCategoryLettering,
	ProductCategoryWindowGraphics,
	ProductCategoryWallGraphics,
	ProductCategoryFloorGraphics,
	ProductCategoryVehicleGraphics,
	ProductCategoryPosters,
	ProductCategoryYardSigns,
	ProductCategoryRigidSigns,
	ProductCategoryBanners,
	ProductCategoryBusinessCards,
	ProductCategoryFlyers,
	ProductCategoryBrochures,
	ProductCategoryPostcards,
	ProductCategoryNCRForms,
	ProductCategoryCanvasPrints,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

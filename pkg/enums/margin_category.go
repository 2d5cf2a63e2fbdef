package enums

import "fmt"

// MarginCategory is the coarse grouping used to select a profit-margin tier
// table. It is independent of which pricing template runs.
type MarginCategory string

const (
	MarginCategoryStickers MarginCategory = "stickers"
	MarginCategorySigns    MarginCategory = "signs"
	MarginCategoryBanners  MarginCategory = "banners"
	MarginCategoryPrint    MarginCategory = "print"
	MarginCategoryCanvas   MarginCategory = "canvas"
	MarginCategorySurfaces MarginCategory = "surfaces"
	MarginCategoryVehicle  MarginCategory = "vehicle"
)

var validMarginCategories = []MarginCategory{
	MarginCategoryStickers,
	MarginCategorySigns,
	MarginCategoryBanners,
	MarginCategoryPrint,
	MarginCategoryCanvas,
	MarginCategorySurfaces,
	MarginCategoryVehicle,
}

// String implements fmt.Stringer.
func (c MarginCategory) String() string {
	return string(c)
}

// IsValid reports whether the value matches a known MarginCategory.
func (c MarginCategory) IsValid() bool {
	for _, candidate := range validMarginCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseMarginCategory converts raw input into a MarginCategory.
func ParseMarginCategory(value string) (MarginCategory, error) {
	for _, candidate := range validMarginCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid margin category %q", value)
}

package enums

import "fmt"

// Category represents the canonical product categories supported by the catalog.
type Category string

const (
	CategoryHobby       Category = "HOBBY"
	CategoryBaby        Category = "BABY"
	CategoryClothing    Category = "CLOTHING"
	CategoryJewelry     Category = "JEWELRY"
	CategoryFood        Category = "FOOD"
	CategoryElectronics Category = "ELECTRONICS"
)

var validCategories = []Category{
	CategoryHobby,
	CategoryBaby,
	CategoryClothing,
	CategoryJewelry,
	CategoryFood,
	CategoryElectronics,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}

package model

import "fmt"

// Veg classifications for a meal.  A nil pointer on the Meal means the
// classification is unknown.
const (
	VegMeat       uint8 = 0
	VegVegetarian uint8 = 1
	VegVegan      uint8 = 2
)

// Meal holds the attributes of one menu entry.  Dietary flags use
// pointers so that nil represents "unknown" rather than "no", mirroring
// the tri-state the kitchen actually works with.
//
// Fields:
//  Name       – display name of the meal.
//  PriceCents – price in cents; never negative.
//  Veg        – VegMeat, VegVegetarian or VegVegan (nil if unknown).
//  EggFree    – free of egg (nil if unknown).
//  DairyFree  – free of dairy (nil if unknown).
//  NutFree    – free of nuts (nil if unknown).
type Meal struct {
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Veg        *uint8 `json:"veg,omitempty"`
	EggFree    *bool  `json:"egg_free,omitempty"`
	DairyFree  *bool  `json:"dairy_free,omitempty"`
	NutFree    *bool  `json:"nut_free,omitempty"`
}

// Menu maps a meal id (normally a short numeric string like "1") to its
// attributes.  Booking orders reference meals by these ids.
type Menu map[string]Meal

// Validate checks every entry of the catalog: non-empty keys and names,
// non-negative prices and a veg classification within range.  Failures
// wrap ErrInvalidMenu and name the meal key.
func (m Menu) Validate() error {
	for key, meal := range m {
		if key == "" {
			return fmt.Errorf("%w: empty meal key", ErrInvalidMenu)
		}
		if meal.Name == "" {
			return fmt.Errorf("%w: meal %q: name required", ErrInvalidMenu, key)
		}
		if meal.PriceCents < 0 {
			return fmt.Errorf("%w: meal %q: price_cents must not be negative, got %d", ErrInvalidMenu, key, meal.PriceCents)
		}
		if meal.Veg != nil && *meal.Veg > VegVegan {
			return fmt.Errorf("%w: meal %q: veg must be 0, 1 or 2, got %d", ErrInvalidMenu, key, *meal.Veg)
		}
	}
	return nil
}

// Has reports whether the catalog contains the given meal id.
func (m Menu) Has(key string) bool {
	_, ok := m[key]
	return ok
}

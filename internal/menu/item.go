package menu

import (
	"encoding/json"

	"github.com/hamza-kay/smashbros/internal/money"
)

// Kind is decided once at load time so nothing downstream has to sniff
// optional fields to work out what a tile is.
type Kind string

const (
	KindSimple Kind = "SIMPLE"
	KindDeal   Kind = "DEAL"
	KindMeal   Kind = "MEAL"
)

// AddonPrice is either a flat delta or a per-size delta map. The shape is
// resolved during normalization; callers only ever ask For(size).
type AddonPrice struct {
	flat   money.Pence
	bySize map[string]money.Pence
}

func FlatAddon(p money.Pence) AddonPrice {
	return AddonPrice{flat: p}
}

func SizedAddon(prices map[string]money.Pence) AddonPrice {
	return AddonPrice{bySize: prices}
}

// For returns the delta this add-on contributes at the given size.
// A sized add-on with no entry for the size contributes nothing.
func (a AddonPrice) For(size string) money.Pence {
	if a.bySize != nil {
		return a.bySize[size]
	}
	return a.flat
}

func (a AddonPrice) BySize() bool { return a.bySize != nil }

// MarshalJSON keeps the upstream wire shape: a bare amount for flat add-ons,
// a size map otherwise.
func (a AddonPrice) MarshalJSON() ([]byte, error) {
	if a.bySize != nil {
		return json.Marshal(a.bySize)
	}
	return json.Marshal(a.flat)
}

func (a *AddonPrice) UnmarshalJSON(b []byte) error {
	addon, err := normalizeAddon(b)
	if err != nil {
		return err
	}
	*a = addon
	return nil
}

// Variation is a named option whose delta depends on the chosen size.
type Variation struct {
	Name   string                 `json:"name"`
	Prices map[string]money.Pence `json:"prices"`
}

// Requirement is one choice point inside a deal or meal: a set of eligible
// item ids, how many of them the shopper picks, and an optional forced size.
type Requirement struct {
	Name     string   `json:"name"`
	IDs      []string `json:"ids"`
	Quantity int      `json:"quantity"`
	Size     string   `json:"size,omitempty"`
}

// MealUpgrade activates extra requirement slots when the shopper opts in.
type MealUpgrade struct {
	PriceDelta   money.Pence   `json:"priceDelta"`
	Requirements []Requirement `json:"requirements"`
}

// Bundle carries the composite-purchase data for deals and meals.
type Bundle struct {
	Requirements []Requirement `json:"requirements,omitempty"`
	MealUpgrade  *MealUpgrade  `json:"mealUpgrade,omitempty"`
}

// Item is the normalized menu entry. Owned by the upstream menu source and
// read-only here: handlers and the pricing engine never mutate one.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Kind        Kind   `json:"kind"`

	// Price is the flat price for items without a size map, and the bundle
	// base price for deals and meals.
	Price money.Pence            `json:"price,omitempty"`
	Sizes map[string]money.Pence `json:"sizes,omitempty"`

	Variations map[string]Variation  `json:"variation,omitempty"`
	Addons     map[string]AddonPrice `json:"addons,omitempty"`

	// MealUpcharge applies only when the item is picked as a sub-item of an
	// upgraded meal.
	MealUpcharge money.Pence `json:"mealUpcharge,omitempty"`

	Bundle *Bundle `json:"bundle,omitempty"`
}

// HasVariations reports whether committing this item requires a variation
// choice.
func (it *Item) HasVariations() bool {
	return len(it.Variations) > 0
}

// VariationName returns the display name for a variation key, or "".
func (it *Item) VariationName(key string) string {
	if key == "" {
		return ""
	}
	v, ok := it.Variations[key]
	if !ok {
		return ""
	}
	return v.Name
}

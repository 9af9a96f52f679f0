package menu

import (
	"encoding/json"
	"fmt"

	"github.com/hamza-kay/smashbros/internal/money"
)

// Raw wire shapes as the upstream menu API sends them. Prices arrive as
// decimal pounds, item ids as numbers or strings, and add-ons as either a
// scalar or a per-size map. All of that is settled here, once, so the rest
// of the system works on typed data.

type rawVariation struct {
	Name   string             `json:"name"`
	Prices map[string]float64 `json:"prices"`
}

// rawID accepts an item id as either a JSON number or a JSON string.
type rawID string

func (id *rawID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = rawID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("unrecognized id %s", b)
	}
	*id = rawID(n.String())
	return nil
}

type rawRequirement struct {
	Name     string  `json:"name"`
	IDs      []rawID `json:"ids"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
}

type rawMealUpgrade struct {
	PriceDelta   float64          `json:"priceDelta"`
	Requirements []rawRequirement `json:"requirements"`
}

type rawItem struct {
	ID           rawID                      `json:"id"`
	Name         string                     `json:"name"`
	Description  string                     `json:"description"`
	ImageURL     string                     `json:"image_url"`
	Price        *float64                   `json:"price"`
	Sizes        map[string]float64         `json:"sizes"`
	Variation    map[string]rawVariation    `json:"variation"`
	Addons       map[string]json.RawMessage `json:"addons"`
	MealUpcharge *float64                   `json:"mealUpcharge"`
	Requirements []rawRequirement           `json:"requirements"`
	MealUpgrade  *rawMealUpgrade            `json:"mealUpgrade"`
}

// NormalizeItems parses a raw item list into typed Items.
func NormalizeItems(data []byte) ([]*Item, error) {
	var raws []rawItem
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse menu items: %w", err)
	}

	items := make([]*Item, 0, len(raws))
	for i := range raws {
		it, err := normalizeItem(&raws[i])
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func normalizeItem(raw *rawItem) (*Item, error) {
	it := &Item{
		ID:          string(raw.ID),
		Name:        raw.Name,
		Description: raw.Description,
		ImageURL:    raw.ImageURL,
		Kind:        classify(raw),
	}

	if raw.Price != nil {
		it.Price = money.FromPounds(*raw.Price)
	}
	if raw.MealUpcharge != nil {
		it.MealUpcharge = money.FromPounds(*raw.MealUpcharge)
	}

	if len(raw.Sizes) > 0 {
		it.Sizes = make(map[string]money.Pence, len(raw.Sizes))
		for size, pounds := range raw.Sizes {
			it.Sizes[size] = money.FromPounds(pounds)
		}
	}

	if len(raw.Variation) > 0 {
		it.Variations = make(map[string]Variation, len(raw.Variation))
		for key, rv := range raw.Variation {
			v := Variation{Name: rv.Name}
			if len(rv.Prices) > 0 {
				v.Prices = make(map[string]money.Pence, len(rv.Prices))
				for size, pounds := range rv.Prices {
					v.Prices[size] = money.FromPounds(pounds)
				}
			}
			it.Variations[key] = v
		}
	}

	if len(raw.Addons) > 0 {
		it.Addons = make(map[string]AddonPrice, len(raw.Addons))
		for name, msg := range raw.Addons {
			addon, err := normalizeAddon(msg)
			if err != nil {
				return nil, fmt.Errorf("item %s addon %q: %w", it.ID, name, err)
			}
			it.Addons[name] = addon
		}
	}

	if it.Kind != KindSimple {
		it.Bundle = &Bundle{
			Requirements: normalizeRequirements(raw.Requirements),
		}
		if raw.MealUpgrade != nil {
			it.Bundle.MealUpgrade = &MealUpgrade{
				PriceDelta:   money.FromPounds(raw.MealUpgrade.PriceDelta),
				Requirements: normalizeRequirements(raw.MealUpgrade.Requirements),
			}
		}
	}

	return it, nil
}

// normalizeAddon decides the flat-vs-by-size shape exactly once.
func normalizeAddon(msg json.RawMessage) (AddonPrice, error) {
	var pounds float64
	if err := json.Unmarshal(msg, &pounds); err == nil {
		return FlatAddon(money.FromPounds(pounds)), nil
	}

	var bySize map[string]float64
	if err := json.Unmarshal(msg, &bySize); err != nil {
		return AddonPrice{}, fmt.Errorf("unrecognized price shape %s", msg)
	}

	prices := make(map[string]money.Pence, len(bySize))
	for size, p := range bySize {
		prices[size] = money.FromPounds(p)
	}
	return SizedAddon(prices), nil
}

func normalizeRequirements(raws []rawRequirement) []Requirement {
	reqs := make([]Requirement, 0, len(raws))
	for _, r := range raws {
		quantity := r.Quantity
		if quantity < 1 {
			quantity = 1
		}
		ids := make([]string, 0, len(r.IDs))
		for _, id := range r.IDs {
			ids = append(ids, string(id))
		}
		reqs = append(reqs, Requirement{
			Name:     r.Name,
			IDs:      ids,
			Quantity: quantity,
			Size:     r.Size,
		})
	}
	return reqs
}

func classify(raw *rawItem) Kind {
	if raw.MealUpgrade != nil {
		return KindMeal
	}
	if len(raw.Requirements) > 0 {
		return KindDeal
	}
	return KindSimple
}

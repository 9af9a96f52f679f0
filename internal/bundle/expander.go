package bundle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hamza-kay/smashbros/internal/cart"
	"github.com/hamza-kay/smashbros/internal/menu"
	"github.com/hamza-kay/smashbros/internal/pricing"
)

// Slot is one concrete occurrence of a requirement. A requirement with
// quantity 3 flattens into three slots the shopper fills independently.
type Slot struct {
	Requirement menu.Requirement
	Key         string
	DisplayName string
}

// Selection is the shopper's choice for one slot.
type Selection struct {
	ItemID    string   `json:"selectedItemId"`
	Variation string   `json:"selectedVariation"`
	Addons    []string `json:"selectedAddons"`
	Size      string   `json:"selectedSize"`
}

// Selections maps slot keys to choices for one open configuration.
type Selections map[string]Selection

// Catalog answers item lookups during expansion.
type Catalog interface {
	Item(id string) (*menu.Item, bool)
}

type Options struct {
	// MealActive is the shopper's meal-upgrade opt-in. Ignored for deals.
	MealActive bool
	// Quantity is the parent line quantity; 0 means 1.
	Quantity int
}

// ValidationError carries per-slot messages for the configurator. The whole
// commit is rejected; nothing reaches the cart.
type ValidationError struct {
	Slots map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bundle configuration invalid: %d slot(s) incomplete", len(e.Slots))
}

// Expansion is a committed bundle: one parent line and one child line per
// filled slot, linked by a fresh shared ParentDealID.
type Expansion struct {
	Parent   cart.Line
	Children []cart.Line
	Warnings []string
}

// Flatten expands requirement multiplicity into individual slots. Display
// labels get an occurrence suffix only when a requirement repeats.
func Flatten(reqs []menu.Requirement) []Slot {
	var slots []Slot
	for _, req := range reqs {
		quantity := req.Quantity
		if quantity < 1 {
			quantity = 1
		}
		for i := 0; i < quantity; i++ {
			name := req.Name
			if quantity > 1 {
				name = fmt.Sprintf("%s %d", req.Name, i+1)
			}
			slots = append(slots, Slot{
				Requirement: req,
				Key:         fmt.Sprintf("%s-%d", req.Name, i),
				DisplayName: name,
			})
		}
	}
	return slots
}

// ActiveRequirements returns the slots open for this configuration: all of
// a deal's requirements; for a meal, the base requirements always and the
// upgrade requirements only once the shopper opts in.
func ActiveRequirements(def *menu.Item, mealActive bool) []menu.Requirement {
	if def.Bundle == nil {
		return nil
	}

	reqs := append([]menu.Requirement(nil), def.Bundle.Requirements...)
	if def.Kind == menu.KindMeal && mealActive && def.Bundle.MealUpgrade != nil {
		reqs = append(reqs, def.Bundle.MealUpgrade.Requirements...)
	}
	return reqs
}

// Expand turns a deal or meal configuration into priced cart lines, or a
// ValidationError listing every incomplete slot.
func Expand(def *menu.Item, sels Selections, catalog Catalog, opts Options) (*Expansion, error) {
	if def.Kind != menu.KindDeal && def.Kind != menu.KindMeal {
		return nil, fmt.Errorf("item %s is not a deal or meal", def.ID)
	}

	quantity := opts.Quantity
	if quantity < 1 {
		quantity = 1
	}
	mealActive := def.Kind == menu.KindMeal && opts.MealActive

	slots := Flatten(ActiveRequirements(def, mealActive))

	resolved := make([]resolvedSlot, 0, len(slots))
	errs := make(map[string]string)

	for _, slot := range slots {
		sel := sels[slot.Key]

		if sel.ItemID == "" {
			sel.ItemID = autoSelect(slot.Requirement, catalog)
		}
		if sel.Size == "" {
			sel.Size = slot.Requirement.Size
		}

		if sel.ItemID == "" {
			errs[slot.Key] = "Please select an item."
			continue
		}

		it, ok := catalog.Item(sel.ItemID)
		if !ok || !eligible(slot.Requirement, sel.ItemID) {
			errs[slot.Key] = "Please select an item."
			continue
		}

		if it.HasVariations() && sel.Variation == "" {
			errs[slot.Key] = "Please select a variation."
			continue
		}

		resolved = append(resolved, resolvedSlot{item: it, sel: sel})
	}

	if len(errs) > 0 {
		return &Expansion{}, &ValidationError{Slots: errs}
	}

	parentDealID := uuid.New().String()
	exp := &Expansion{}

	// Parent price = bundle base + meal delta + every slot's variation and
	// add-on delta. A slot item's meal upcharge belongs to the child line
	// alone; children never carry the base.
	parentPrice := def.Price
	if mealActive && def.Bundle.MealUpgrade != nil {
		parentPrice += def.Bundle.MealUpgrade.PriceDelta
	}

	for _, rs := range resolved {
		choice := pricing.Choice{
			Size:      rs.sel.Size,
			Variation: rs.sel.Variation,
			Addons:    rs.sel.Addons,
		}
		delta, warnings := pricing.Customization(rs.item, choice)
		exp.Warnings = append(exp.Warnings, warnings...)
		parentPrice += delta

		childPrice := delta
		if mealActive {
			childPrice += rs.item.MealUpcharge
		}

		exp.Children = append(exp.Children, cart.Line{
			CartLineID:        uuid.New().String(),
			ID:                rs.item.ID,
			Name:              rs.item.Name,
			Price:             childPrice,
			Quantity:          1,
			SelectedSize:      rs.sel.Size,
			SelectedVariation: rs.sel.Variation,
			VariationName:     rs.item.VariationName(rs.sel.Variation),
			SelectedAddons:    rs.sel.Addons,
			ParentDealID:      parentDealID,
		})
	}

	exp.Parent = cart.Line{
		CartLineID:   uuid.New().String(),
		ID:           def.ID,
		Name:         def.Name,
		Price:        parentPrice,
		Quantity:     quantity,
		ParentDealID: parentDealID,
		IsDeal:       true,
		IsMeal:       def.Kind == menu.KindMeal,
		TotalPrice:   parentPrice.Mul(quantity),
	}

	return exp, nil
}

type resolvedSlot struct {
	item *menu.Item
	sel  Selection
}

// autoSelect picks the slot's item when exactly one eligible candidate
// exists, so the shopper is never asked a one-option question.
func autoSelect(req menu.Requirement, catalog Catalog) string {
	var found string
	for _, id := range req.IDs {
		if _, ok := catalog.Item(id); !ok {
			continue
		}
		if found != "" {
			return ""
		}
		found = id
	}
	return found
}

func eligible(req menu.Requirement, itemID string) bool {
	for _, id := range req.IDs {
		if id == itemID {
			return true
		}
	}
	return false
}

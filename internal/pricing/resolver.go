package pricing

import (
	"fmt"

	"github.com/hamza-kay/smashbros/internal/menu"
	"github.com/hamza-kay/smashbros/internal/money"
)

// Choice is one shopper configuration of a menu item.
type Choice struct {
	Size      string
	Variation string
	Addons    []string

	// MealActive applies the item's meal upcharge; set only when the item is
	// resolved as a sub-item of an upgraded meal.
	MealActive bool
}

// Resolve computes the unit price for an item under a choice.
//
// Missing price data never fails the lookup: the menu has always been
// allowed to be sparse and the cart stays usable. Every zero that comes
// from a gap is reported as a warning so callers can log it instead of the
// gap hiding silently.
func Resolve(it *menu.Item, ch Choice) (money.Pence, []string) {
	base, warnings := basePrice(it, ch.Size)
	delta, deltaWarnings := Customization(it, ch)
	return base + delta, append(warnings, deltaWarnings...)
}

// Customization computes only the variation, add-on, and meal-upcharge
// deltas for a choice. Bundle sub-items are priced with this alone; the
// bundle base price lives on the parent line.
func Customization(it *menu.Item, ch Choice) (money.Pence, []string) {
	var total money.Pence
	var warnings []string

	if ch.Variation != "" {
		if v, ok := it.Variations[ch.Variation]; ok {
			total += v.Prices[ch.Size]
		} else {
			warnings = append(warnings, fmt.Sprintf("item %s: unknown variation %q", it.ID, ch.Variation))
		}
	}

	for _, name := range ch.Addons {
		addon, ok := it.Addons[name]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("item %s: unknown add-on %q", it.ID, name))
			continue
		}
		total += addon.For(ch.Size)
	}

	if ch.MealActive {
		total += it.MealUpcharge
	}

	return total, warnings
}

func basePrice(it *menu.Item, size string) (money.Pence, []string) {
	if len(it.Sizes) > 0 {
		if p, ok := it.Sizes[size]; ok {
			return p, nil
		}
		if it.Price > 0 {
			return it.Price, []string{fmt.Sprintf("item %s: no price for size %q, using flat price", it.ID, size)}
		}
		return 0, []string{fmt.Sprintf("item %s: no price for size %q, defaulting to zero", it.ID, size)}
	}
	if it.Price > 0 {
		return it.Price, nil
	}
	return 0, []string{fmt.Sprintf("item %s: no price for size %q, defaulting to zero", it.ID, size)}
}

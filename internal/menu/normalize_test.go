package menu

import (
	"testing"

	"github.com/hamza-kay/smashbros/internal/money"
)

func TestNormalizeItemsClassifiesKinds(t *testing.T) {
	data := []byte(`[
		{"id": 101, "name": "Margherita", "price": 8.99},
		{"id": 50, "name": "Lunch Deal", "price": 5.00,
		 "requirements": [{"name": "Drink", "ids": [11, 12], "quantity": 1}]},
		{"id": 60, "name": "Burger Meal", "price": 6.00,
		 "mealUpgrade": {"priceDelta": 1.50,
		   "requirements": [{"name": "Side", "ids": [21], "quantity": 1}]}}
	]`)

	items, err := NormalizeItems(data)
	if err != nil {
		t.Fatalf("NormalizeItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}

	if items[0].Kind != KindSimple {
		t.Fatalf("items[0].Kind = %s, want SIMPLE", items[0].Kind)
	}
	if items[1].Kind != KindDeal {
		t.Fatalf("items[1].Kind = %s, want DEAL", items[1].Kind)
	}
	if items[2].Kind != KindMeal {
		t.Fatalf("items[2].Kind = %s, want MEAL", items[2].Kind)
	}
}

func TestNormalizeItemsConvertsPoundsToPence(t *testing.T) {
	data := []byte(`[
		{"id": 101, "name": "Margherita",
		 "sizes": {"10": 8.99, "12": 11.99},
		 "mealUpcharge": 0.50}
	]`)

	items, err := NormalizeItems(data)
	if err != nil {
		t.Fatalf("NormalizeItems: %v", err)
	}

	it := items[0]
	if it.Sizes["10"] != 899 || it.Sizes["12"] != 1199 {
		t.Fatalf("sizes = %v", it.Sizes)
	}
	if it.MealUpcharge != 50 {
		t.Fatalf("meal upcharge = %d, want 50", it.MealUpcharge)
	}
}

func TestNormalizeItemsNumericAndStringIDs(t *testing.T) {
	data := []byte(`[
		{"id": 101, "name": "A"},
		{"id": "abc-1", "name": "B",
		 "requirements": [{"name": "Drink", "ids": [11, "x-2"], "quantity": 1}]}
	]`)

	items, err := NormalizeItems(data)
	if err != nil {
		t.Fatalf("NormalizeItems: %v", err)
	}

	if items[0].ID != "101" {
		t.Fatalf("items[0].ID = %q", items[0].ID)
	}
	if items[1].ID != "abc-1" {
		t.Fatalf("items[1].ID = %q", items[1].ID)
	}
	ids := items[1].Bundle.Requirements[0].IDs
	if len(ids) != 2 || ids[0] != "11" || ids[1] != "x-2" {
		t.Fatalf("requirement ids = %v", ids)
	}
}

func TestNormalizeRejectsMalformedID(t *testing.T) {
	data := []byte(`[{"id": {"nested": true}, "name": "Bad"}]`)

	if _, err := NormalizeItems(data); err == nil {
		t.Fatal("expected error for a malformed id")
	}
}

func TestNormalizeAddonShapes(t *testing.T) {
	data := []byte(`[
		{"id": 11, "name": "Cola",
		 "addons": {"ice": {"can": 0.20, "bottle": 0.30}, "straw": 0.10}}
	]`)

	items, err := NormalizeItems(data)
	if err != nil {
		t.Fatalf("NormalizeItems: %v", err)
	}

	addons := items[0].Addons
	ice := addons["ice"]
	if !ice.BySize() {
		t.Fatal("ice should be a per-size add-on")
	}
	if ice.For("can") != 20 || ice.For("bottle") != 30 {
		t.Fatalf("ice prices: can=%d bottle=%d", ice.For("can"), ice.For("bottle"))
	}
	if ice.For("glass") != 0 {
		t.Fatalf("ice at unknown size = %d, want 0", ice.For("glass"))
	}

	straw := addons["straw"]
	if straw.BySize() {
		t.Fatal("straw should be a flat add-on")
	}
	if straw.For("can") != 10 || straw.For("") != 10 {
		t.Fatalf("straw price = %d / %d, want 10", straw.For("can"), straw.For(""))
	}
}

func TestNormalizeAddonRejectsBadShape(t *testing.T) {
	data := []byte(`[
		{"id": 11, "name": "Cola", "addons": {"ice": [1, 2]}}
	]`)

	if _, err := NormalizeItems(data); err == nil {
		t.Fatal("expected error for an unrecognized add-on shape")
	}
}

func TestNormalizeRequirementDefaultsQuantity(t *testing.T) {
	data := []byte(`[
		{"id": 50, "name": "Deal",
		 "requirements": [{"name": "Drink", "ids": [11]}]}
	]`)

	items, err := NormalizeItems(data)
	if err != nil {
		t.Fatalf("NormalizeItems: %v", err)
	}
	if q := items[0].Bundle.Requirements[0].Quantity; q != 1 {
		t.Fatalf("quantity = %d, want 1", q)
	}
}

func TestNormalizeVariationPrices(t *testing.T) {
	data := []byte(`[
		{"id": 101, "name": "Margherita",
		 "variation": {"stuffed": {"name": "Stuffed Crust", "prices": {"10": 1.50, "12": 2.00}}}}
	]`)

	items, err := NormalizeItems(data)
	if err != nil {
		t.Fatalf("NormalizeItems: %v", err)
	}

	v, ok := items[0].Variations["stuffed"]
	if !ok {
		t.Fatal("variation missing")
	}
	if v.Name != "Stuffed Crust" {
		t.Fatalf("name = %q", v.Name)
	}
	if v.Prices["10"] != money.Pence(150) || v.Prices["12"] != money.Pence(200) {
		t.Fatalf("prices = %v", v.Prices)
	}
}

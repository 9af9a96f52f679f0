package cart

import (
	"encoding/json"
	"sort"

	"github.com/hamza-kay/smashbros/internal/money"
)

// Line is one cart entry. Standalone items are single lines; a deal or meal
// is a parent line plus child lines sharing a ParentDealID.
type Line struct {
	CartLineID string `json:"cartLineId"`

	// ID is the source menu item or bundle id, not the line identity.
	ID   string `json:"id"`
	Name string `json:"name"`

	Price    money.Pence `json:"price"`
	Quantity int         `json:"quantity"`

	SelectedSize      string   `json:"selectedSize,omitempty"`
	SelectedVariation string   `json:"selectedVariation,omitempty"`
	VariationName     string   `json:"variationName,omitempty"`
	SelectedAddons    []string `json:"selectedAddons,omitempty"`

	ParentDealID string `json:"parentDealId,omitempty"`
	IsDeal       bool   `json:"isDeal,omitempty"`
	IsMeal       bool   `json:"isMeal,omitempty"`

	// TotalPrice is unit price times quantity, recorded at add time on
	// parents and standalone lines. Children carry unit price only.
	TotalPrice money.Pence `json:"totalPrice,omitempty"`
}

// GroupKey is the display grouping identity: bundle lines group under their
// shared ParentDealID, standalone lines stand alone.
func (l Line) GroupKey() string {
	if l.ParentDealID != "" {
		return l.ParentDealID
	}
	return l.CartLineID
}

// purchaseKey identifies one purchase unit for counting: a whole bundle is
// one unit regardless of how many child lines it has.
func (l Line) purchaseKey() string {
	if l.ParentDealID != "" {
		return l.ParentDealID
	}
	return l.ID
}

// mergeKey decides whether two adds are the same configuration. Bundle
// lines never merge; each purchase instance gets a fresh ParentDealID, so
// their keys never collide. JSON encoding keeps field boundaries intact no
// matter what characters the names contain.
func (l Line) mergeKey() string {
	addons := append([]string(nil), l.SelectedAddons...)
	sort.Strings(addons)

	key, _ := json.Marshal([]any{
		l.ID,
		l.ParentDealID,
		l.SelectedVariation,
		l.SelectedSize,
		addons,
	})
	return string(key)
}

func (l Line) mergeable() bool {
	return l.ParentDealID == ""
}

package cart

import (
	"errors"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamza-kay/smashbros/internal/menu"
	"github.com/hamza-kay/smashbros/internal/money"
	"github.com/hamza-kay/smashbros/internal/pricing"
)

// serviceFeeRate is the storefront's flat service fee on the subtotal.
const serviceFeeRate = 0.05

// Catalog answers menu item lookups for cart configuration.
type Catalog interface {
	Item(id string) (*menu.Item, bool)
}

type Handler struct {
	carts   *Service
	catalog Catalog
}

func NewHandler(carts *Service, catalog Catalog) *Handler {
	return &Handler{carts: carts, catalog: catalog}
}

// --------------------------------------------------
// POST /carts
// --------------------------------------------------
func (h *Handler) CreateCart(c *gin.Context) {
	ledger := h.carts.Create()
	c.JSON(http.StatusCreated, gin.H{"cartId": ledger.CartID()})
}

// --------------------------------------------------
// GET /carts/:cartId
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.view(ledger))
}

type addItemRequest struct {
	ItemID    string   `json:"itemId" binding:"required"`
	Quantity  int      `json:"quantity"`
	Size      string   `json:"size"`
	Variation string   `json:"variation"`
	Addons    []string `json:"addons"`
}

// --------------------------------------------------
// POST /carts/:cartId/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	it, found := h.catalog.Item(req.ItemID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if it.Kind != menu.KindSimple {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deals and meals are added via the bundles endpoint"})
		return
	}
	if it.HasVariations() && req.Variation == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please select a variation."})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	price, warnings := pricing.Resolve(it, pricing.Choice{
		Size:      req.Size,
		Variation: req.Variation,
		Addons:    req.Addons,
	})
	for _, w := range warnings {
		log.Printf("cart %s: %s", ledger.CartID(), w)
	}

	line := ledger.AddLine(Line{
		ID:                it.ID,
		Name:              it.Name,
		Price:             price,
		Quantity:          quantity,
		SelectedSize:      req.Size,
		SelectedVariation: req.Variation,
		VariationName:     it.VariationName(req.Variation),
		SelectedAddons:    req.Addons,
		TotalPrice:        price.Mul(quantity),
	})

	c.JSON(http.StatusCreated, line)
}

// --------------------------------------------------
// POST /carts/:cartId/lines/:lineId/increase
// --------------------------------------------------
func (h *Handler) IncreaseQuantity(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	ledger.IncreaseQuantity(c.Param("lineId"))
	c.JSON(http.StatusOK, h.view(ledger))
}

// --------------------------------------------------
// POST /carts/:cartId/lines/:lineId/decrease
// --------------------------------------------------
func (h *Handler) DecreaseQuantity(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	ledger.DecreaseQuantity(c.Param("lineId"))
	c.JSON(http.StatusOK, h.view(ledger))
}

// --------------------------------------------------
// DELETE /carts/:cartId/lines/:lineId
// --------------------------------------------------
func (h *Handler) RemoveLine(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	if !ledger.RemoveLine(c.Param("lineId")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart line not found"})
		return
	}
	c.JSON(http.StatusOK, h.view(ledger))
}

// --------------------------------------------------
// DELETE /carts/:cartId/groups/:groupKey
// --------------------------------------------------
func (h *Handler) RemoveBundle(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	ledger.RemoveBundle(c.Param("groupKey"))
	c.JSON(http.StatusOK, h.view(ledger))
}

// --------------------------------------------------
// DELETE /carts/:cartId
// --------------------------------------------------
func (h *Handler) ClearCart(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	ledger.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// --------------------------------------------------
// View assembly
// --------------------------------------------------

type lineGroup struct {
	Key   string `json:"key"`
	Lines []Line `json:"lines"`
}

type cartView struct {
	CartID       string      `json:"cartId"`
	Items        []Line      `json:"cartItems"`
	Groups       []lineGroup `json:"groups"`
	TotalItems   int         `json:"totalItems"`
	GroupedCount int         `json:"groupedCount"`
	Subtotal     money.Pence `json:"subtotal"`
	ServiceFee   money.Pence `json:"serviceFee"`
	Total        money.Pence `json:"total"`
}

func (h *Handler) view(ledger *Ledger) cartView {
	snap := ledger.Snapshot()
	subtotal := ledger.Subtotal()
	fee := money.Pence(math.Round(float64(subtotal) * serviceFeeRate))

	return cartView{
		CartID:       snap.CartID,
		Items:        snap.Lines,
		Groups:       groupLines(snap.Lines),
		TotalItems:   ledger.TotalItemCount(),
		GroupedCount: ledger.GroupedCount(),
		Subtotal:     subtotal,
		ServiceFee:   fee,
		Total:        subtotal + fee,
	}
}

// groupLines buckets lines by ParentDealID falling back to CartLineID,
// preserving ledger order.
func groupLines(lines []Line) []lineGroup {
	index := make(map[string]int)
	groups := make([]lineGroup, 0, len(lines))

	for _, line := range lines {
		key := line.GroupKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, lineGroup{Key: key})
		}
		groups[i].Lines = append(groups[i].Lines, line)
	}
	return groups
}

func (h *Handler) ledger(c *gin.Context) (*Ledger, bool) {
	ledger, err := h.carts.Get(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		}
		return nil, false
	}
	return ledger, true
}

package bundle

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamza-kay/smashbros/internal/cart"
)

type Handler struct {
	carts   *cart.Service
	catalog Catalog
}

func NewHandler(carts *cart.Service, catalog Catalog) *Handler {
	return &Handler{carts: carts, catalog: catalog}
}

type commitRequest struct {
	ItemID     string     `json:"itemId" binding:"required"`
	Quantity   int        `json:"quantity"`
	MealActive bool       `json:"isMeal"`
	Selections Selections `json:"selections"`
}

// --------------------------------------------------
// POST /carts/:cartId/bundles
// --------------------------------------------------
func (h *Handler) Commit(c *gin.Context) {
	ledger, err := h.carts.Get(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		}
		return
	}

	var req commitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	def, found := h.catalog.Item(req.ItemID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	exp, err := Expand(def, req.Selections, h.catalog, Options{
		MealActive: req.MealActive,
		Quantity:   req.Quantity,
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Slots})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, w := range exp.Warnings {
		log.Printf("cart %s: %s", ledger.CartID(), w)
	}

	ledger.AddBundle(exp.Parent, exp.Children)

	c.JSON(http.StatusCreated, gin.H{
		"parent":   exp.Parent,
		"children": exp.Children,
	})
}

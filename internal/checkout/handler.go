package checkout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamza-kay/smashbros/internal/cart"
)

type Handler struct {
	carts   *cart.Service
	service *Service
}

func NewHandler(carts *cart.Service, service *Service) *Handler {
	return &Handler{carts: carts, service: service}
}

// --------------------------------------------------
// POST /carts/:cartId/checkout
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	var customer Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	intent, err := h.service.Checkout(c.Request.Context(), ledger, customer, c.GetString("appID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case customer.Validate() != nil:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create payment intent"})
		}
		return
	}

	c.JSON(http.StatusOK, intent)
}

// --------------------------------------------------
// POST /carts/:cartId/complete
// --------------------------------------------------
func (h *Handler) Complete(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	if err := h.service.Complete(c.Request.Context(), ledger); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order completed"})
}

func (h *Handler) ledger(c *gin.Context) (*cart.Ledger, bool) {
	ledger, err := h.carts.Get(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		}
		return nil, false
	}
	return ledger, true
}

package restaurant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// GET /restaurant/status
// --------------------------------------------------
// The storefront polls this to gate the order button.
func (h *Handler) Status(c *gin.Context) {
	settings, err := h.repo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}

type toggleRequest struct {
	AcceptingOrders *bool `json:"accepting_orders" binding:"required"`
}

// --------------------------------------------------
// PUT /merchant/restaurant/toggle
// --------------------------------------------------
func (h *Handler) Toggle(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accepting_orders is required"})
		return
	}

	if err := h.repo.SetAcceptingOrders(c.Request.Context(), *req.AcceptingOrders, userID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update restaurant status"})
		return
	}

	settings, err := h.repo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}

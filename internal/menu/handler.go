package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /menu
// --------------------------------------------------
func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.service.Restaurant(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch restaurant data"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// GET /menu/section/:menuId
// --------------------------------------------------
func (h *Handler) GetSections(c *gin.Context) {
	sections, err := h.service.Sections(c.Request.Context(), c.Param("menuId"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch sections"})
		return
	}

	c.JSON(http.StatusOK, sections)
}

// --------------------------------------------------
// GET /menu/items/:sectionId
// --------------------------------------------------
func (h *Handler) GetSectionItems(c *gin.Context) {
	items, err := h.service.SectionItems(c.Request.Context(), c.Param("sectionId"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch section items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// POST /merchant/items/:itemId/image
// --------------------------------------------------
func (h *Handler) UploadItemImage(c *gin.Context) {
	itemID := c.Param("itemId")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadItemImage(
		c.Request.Context(),
		itemID,
		file,
		header.Filename,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item_id":   itemID,
		"image_url": url,
	})
}

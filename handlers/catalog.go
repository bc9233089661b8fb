package handlers

import (
	"net/http"

	"shortlet/models"
	"shortlet/services/catalog"
	"shortlet/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves property listing, search and detail endpoints.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListProperties handles GET /api/properties with optional filters.
func (h *CatalogHandler) ListProperties(c *gin.Context) {
	var filter models.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing filters", err.Error())
		return
	}

	properties, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load properties", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties, "count": len(properties)})
}

// GetProperty handles GET /api/properties/:id.
func (h *CatalogHandler) GetProperty(c *gin.Context) {
	id := c.Param("id")
	property, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "property not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

// ListAmenities handles GET /api/amenities.
func (h *CatalogHandler) ListAmenities(c *gin.Context) {
	amenities, err := h.Svc.Amenities(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load amenities", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"amenities": amenities})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	infraRegistry "github.com/sangkips/tillpoint-api/internal/infrastructure/registry"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/sangkips/tillpoint-api/pkg/apperror"
)

// CatalogHandler serves catalog lookups for the terminal front end
type CatalogHandler struct {
	catalog *infraRegistry.ItemRegistry
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *infraRegistry.ItemRegistry) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List returns the full catalog
func (h *CatalogHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Catalog", h.catalog.Items())
}

// Get returns one item together with its availability
func (h *CatalogHandler) Get(c *gin.Context) {
	item, ok := h.catalog.FindItem(c.Param("id"))
	if !ok {
		response.Error(c, apperror.NewNotFoundError("Item"))
		return
	}

	response.Success(c, http.StatusOK, "Item", response.ItemResponse{
		Item:    *item,
		InStock: h.catalog.CheckItemAvailability(item.ID, 1),
	})
}

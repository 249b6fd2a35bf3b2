// File: handlers/destination.go
package handlers

import (
	"net/http"

	"voyago/models"
	"voyago/services/catalog"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DestinationHandler exposes the destination catalog endpoints.
type DestinationHandler struct {
	Service catalog.CatalogService
}

// NewDestinationHandler creates a new DestinationHandler.
func NewDestinationHandler(svc catalog.CatalogService) *DestinationHandler {
	return &DestinationHandler{Service: svc}
}

// ListDestinationsHandler handles GET /destinations.
func (h *DestinationHandler) ListDestinationsHandler(c *gin.Context) {
	dests, err := h.Service.List(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch destinations", zap.Error(err))
		serviceError(c, "Failed to fetch destinations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": dests})
}

// GetDestinationHandler handles GET /destinations/:id.
func (h *DestinationHandler) GetDestinationHandler(c *gin.Context) {
	id := c.Param("id")
	dest, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Warn("Destination not found", zap.String("id", id), zap.Error(err))
		serviceError(c, "Destination not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": dest})
}

// CreateDestinationHandler handles POST /admin/destinations. The submitted
// fields are stored verbatim; price and category are not range-checked.
func (h *DestinationHandler) CreateDestinationHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var dest models.Destination
	if err := c.ShouldBindJSON(&dest); err != nil {
		logger.Error("Invalid destination payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create destination", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), dest)
	if err != nil {
		logger.Error("Failed to create destination", zap.Error(err))
		serviceError(c, "Failed to create destination", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "destination": created})
}

// DeleteDestinationHandler handles DELETE /admin/destinations/:id. Removal
// is unconditional; deleting an absent id still succeeds.
func (h *DestinationHandler) DeleteDestinationHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to delete destination", zap.String("id", id), zap.Error(err))
		serviceError(c, "Failed to delete destination", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Destination deleted"})
}

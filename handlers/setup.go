// File: handlers/setup.go
package handlers

import (
	"net/http"

	"voyago/services/catalog"
	"voyago/services/profile"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupHandler exposes the first-run seeding endpoints.
type SetupHandler struct {
	ProfileService profile.ProfileService
	CatalogService catalog.CatalogService
}

// NewSetupHandler creates a new SetupHandler.
func NewSetupHandler(ps profile.ProfileService, cs catalog.CatalogService) *SetupHandler {
	return &SetupHandler{ProfileService: ps, CatalogService: cs}
}

// SetupAdminHandler handles POST /setup-admin: creates the designated admin
// account if it doesn't exist yet.
func (h *SetupHandler) SetupAdminHandler(c *gin.Context) {
	created, err := h.ProfileService.SetupAdmin(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Admin setup failed", zap.Error(err))
		serviceError(c, "Admin setup failed", err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Admin already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin user created"})
}

// InitHandler handles POST /init: seeds the admin account and the sample
// catalog on first run.
func (h *SetupHandler) InitHandler(c *gin.Context) {
	logger := utils.GetLogger()
	if _, err := h.ProfileService.SetupAdmin(c.Request.Context()); err != nil {
		// Admin seeding is best effort here, same as the catalog init flow.
		logger.Warn("Admin seed during init failed", zap.Error(err))
	}

	seeded, err := h.CatalogService.Seed(c.Request.Context())
	if err != nil {
		logger.Error("Failed to initialize destinations", zap.Error(err))
		serviceError(c, "Failed to initialize destinations", err)
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Already initialized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Destinations initialized"})
}

// File: handlers/admin.go
package handlers

import (
	"net/http"

	"voyago/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	ProfileService profile.ProfileService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ps profile.ProfileService) *AdminHandler {
	return &AdminHandler{ProfileService: ps}
}

// GetAllUsersHandler handles GET /admin/users.
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.ProfileService.GetAllProfiles(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		serviceError(c, "Failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// File: handlers/profile.go
package handlers

import (
	"net/http"

	"voyago/middleware"
	"voyago/services/profile"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes profile sync and role-correction endpoints.
type ProfileHandler struct {
	Service profile.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// SyncProfileHandler handles POST /sync-profile. It ensures the logged-in
// identity has a profile record, creating one on first call.
func (h *ProfileHandler) SyncProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.Service.SyncProfile(c.Request.Context(), identity)
	if err != nil {
		logger.Error("Failed to sync profile", zap.String("userID", identity.ID), zap.Error(err))
		serviceError(c, "Failed to sync profile", err)
		return
	}

	resp := gin.H{"success": true, "profile": result.Profile, "synced": result.Synced}
	if result.AutoFixed {
		resp["autoFixed"] = true
	}
	c.JSON(http.StatusOK, resp)
}

// FixAdminRoleHandler handles POST /fix-admin-role. Only the designated
// admin email may promote itself.
func (h *ProfileHandler) FixAdminRoleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	prof, err := h.Service.FixAdminRole(c.Request.Context(), identity)
	if err != nil {
		logger.Warn("Fix admin role refused", zap.String("email", identity.Email), zap.Error(err))
		serviceError(c, "Not authorized to become admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin role granted!", "profile": prof})
}

// SignupHandler handles POST /signup: account creation through the auth
// provider plus the profile record.
func (h *ProfileHandler) SignupHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create user", "details": err.Error()})
		return
	}

	prof, err := h.Service.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		logger.Error("Signup failed", zap.String("email", req.Email), zap.Error(err))
		serviceError(c, "Failed to create user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": prof})
}

// middleware/admin.go
package middleware

import (
	"net/http"

	"voyago/services/profile"

	"github.com/gin-gonic/gin"
)

// AdminOnly loads the caller's profile and aborts unless it carries the
// admin role. Must run after AuthRequired.
func AdminOnly(profiles profile.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		prof, err := profiles.GetProfile(c.Request.Context(), identity.ID)
		if err != nil || !prof.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

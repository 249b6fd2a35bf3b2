// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"voyago/services/auth"

	"github.com/gin-gonic/gin"
)

const identityContextKey = "identity"

// AuthRequired resolves the bearer credential through the auth provider and
// stores the identity in the request context. Every user-scoped or mutating
// route runs through this before touching the store.
func AuthRequired(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil || identity == nil || identity.ID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by AuthRequired.
func IdentityFrom(c *gin.Context) (*auth.Identity, bool) {
	val, ok := c.Get(identityContextKey)
	if !ok {
		return nil, false
	}
	identity, ok := val.(*auth.Identity)
	return identity, ok
}

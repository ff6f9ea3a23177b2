package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harper-lane/storefront-api/config"
	"github.com/harper-lane/storefront-api/models"
	"github.com/harper-lane/storefront-api/services"
)

// AuthError represents an authentication or authorization failure
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// RequireAuth validates the bearer token and loads the authenticated user
// into the request context. Requests without a valid token get a 401.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := services.ParseToken(token, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// The user row is re-read per request so role changes and deletions
		// take effect immediately, not at token expiry.
		var user models.User
		if err := config.GetDB().First(&user, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("current_user", &user)
		c.Next()
	}
}

// RequireAdmin rejects requests whose authenticated user is not an admin.
// It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetCurrentUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetCurrentUser extracts the authenticated user from the Gin context
func GetCurrentUser(c *gin.Context) (*models.User, error) {
	v, exists := c.Get("current_user")
	if !exists {
		return nil, &AuthError{Code: "MISSING_USER", Message: "User not found in context"}
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil, &AuthError{Code: "INVALID_USER", Message: "User is not in the expected format"}
	}
	return user, nil
}

// File: middleware/adminAuth.go
package middleware

import (
	"net/http"

	userRepo "afinare/database/repository/user"
	"afinare/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates administrative routes. It runs after
// JWTAuthMiddleware and reads the role from the users document on every
// request, so demoting an account takes effect immediately.
func AdminOnlyMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("userID")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		userID, ok := userIDVal.(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		usr, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}

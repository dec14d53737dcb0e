// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"afinare/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and checks that a live
// server-side session exists for it. On success the user ID and email from
// the session are placed on the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		// A valid signature is not enough: the session must still exist,
		// so revoked tokens are rejected before expiry.
		authCache := utils.GetAuthCacheClient()
		if authCache == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Authentication temporarily unavailable",
				"code":  503,
			})
			return
		}
		session, err := utils.GetAuthSession(authCache, utils.HashToken(tokenString))
		if err != nil || session == nil || session.UserID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired or revoked",
				"code":  0,
			})
			return
		}

		c.Set("userID", session.UserID)
		c.Set("userEmail", session.Email)
		c.Next()
	}
}

// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"veggieweek/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the authenticated user
// id is stored.
const ContextUserID = "userID"

// AuthMiddleware validates the bearer token and injects the resolved user
// id into the request context. Missing, malformed, tampered and expired
// tokens all get the identical response, so a caller cannot tell which.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		userID, err := utils.ParseUserID(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID reads the authenticated user id set by AuthMiddleware. Handlers
// behind the middleware can rely on it being present.
func UserID(c *gin.Context) uint {
	return c.MustGet(ContextUserID).(uint)
}

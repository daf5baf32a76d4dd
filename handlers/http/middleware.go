package httpHandler

import (
	"net/http"
	"strings"

	"hotel-server/token"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// RequireAuth validates the Bearer token and stores the authenticated user id
// on the request context. Booking and account routes sit behind it.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization header"})
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID returns the user id set by RequireAuth.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}

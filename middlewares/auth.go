package middlewares

import (
	"net/http"
	"strings"

	"lifecompass/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and sets the caller identity in
// the context. Requests without a valid token are rejected.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}

		valid, userID, err := utils.ValidateTokenAndFetchUserID(parts[1])
		if err != nil || !valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campus-backend/models"
	"campus-backend/services"
)

// JWTAuthMiddleware gates a route behind a bearer token. A missing or
// malformed Authorization header is 401; a token that fails verification
// is 403. On success the verified claims are attached to the context.
func JWTAuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header missing"})
			return
		}

		// Format token: "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("user", claims)
		c.Set("userID", claims.ID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// AdminOnly runs after JWTAuthMiddleware and rejects non-admin callers
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

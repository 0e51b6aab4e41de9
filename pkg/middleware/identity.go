package middleware

import (
	"strings"

	"game-platform/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// IdentityMiddleware extracts the caller identity from a bearer token when one
// is present. Every endpoint is public, so the request is never rejected: the
// identity is only used for request logging and rate-limit keying.
func IdentityMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doctorsportal/doctors-portal-api/internal/utils"
)

// ContextEmailKey is where AuthMiddleware stores the decoded identity.
const ContextEmailKey = "email"

// RoleChecker answers whether an email belongs to an admin. "No such
// user" is a valid answer (false), not an error.
type RoleChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AuthMiddleware requires a bearer token. A missing header is 401; a
// present but invalid or expired token is 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// AdminMiddleware gates a route on the stored role of the decoded
// identity. It must run after AuthMiddleware. The role lookup is
// injected once at route registration.
func AdminMiddleware(rc RoleChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		ok, err := rc.IsAdmin(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": "Failed to verify role"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		c.Next()
	}
}

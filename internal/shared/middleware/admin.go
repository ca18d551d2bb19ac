package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/shared/response"
)

const roleAdmin = "admin"

// RequireRole lets the request through when the token role is one of roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxKeyRole)
		if role == "" || !slices.Contains(roles, role) {
			response.Forbidden(c, "Access denied: insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminMiddleware guards the back-office routes
func AdminMiddleware() gin.HandlerFunc {
	return RequireRole(roleAdmin)
}

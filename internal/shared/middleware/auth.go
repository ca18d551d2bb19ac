package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/jwt"
	"vitrine-backend/pkg/logger"
)

const (
	ctxKeyClaims = "claims"
	ctxKeyEmail  = "email"
	ctxKeyRole   = "role"
)

// RevocationChecker reports whether a token id has been logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware verifies the Bearer access token and rejects revoked ones
func AuthMiddleware(manager *jwt.Manager, revocations RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read "Authorization: Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 2. Verify signature, expiry and type
		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		// 3. Logged out tokens stay invalid until they expire
		if revocations != nil {
			revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("Token revocation check failed", map[string]interface{}{
					"error": err.Error(),
				})
			} else if revoked {
				response.Unauthorized(c, "token has been revoked")
				c.Abort()
				return
			}
		}

		// 4. Expose the identity to handlers
		c.Set(ctxKeyClaims, claims)
		c.Set(ctxKeyEmail, claims.Email)
		c.Set(ctxKeyRole, claims.Role)

		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by AuthMiddleware
func ClaimsFromContext(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ctxKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vitrine-backend/internal/shared/utils"
)

const ctxKeyClientIP = "client_ip"

// ClientIPMiddleware resolves the caller address once (proxy headers first).
// Register it after RequestID so the request logger carries the ip too.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := utils.ExtractClientIP(c)
		c.Set(ctxKeyClientIP, ip)

		zerolog.Ctx(c.Request.Context()).UpdateContext(func(zc zerolog.Context) zerolog.Context {
			return zc.Str("ip", ip)
		})

		c.Next()
	}
}

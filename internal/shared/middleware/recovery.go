package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vitrine-backend/internal/shared/response"
)

// Recovery turns a panic into the standard 500 envelope.
// gin's own panic dump is discarded; the request logger records it.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().
			Str("path", c.Request.URL.Path).
			Interface("error", recovered).
			Msg("Panic recovered")

		response.ErrorResponse(c, http.StatusInternalServerError, "SYS_INTERNAL_ERROR", "Internal server error")
		c.Abort()
	})
}

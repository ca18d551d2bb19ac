package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ctxKeyRequestID = "request_id"
	HeaderRequestID = "X-Request-ID"

	maxRequestIDLength = 64
)

// RequestID reuses the caller's X-Request-ID or generates one, and attaches
// a logger tagged with it to the request context (zerolog.Ctx).
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(ctxKeyRequestID, id)
		c.Header(HeaderRequestID, id)

		reqLogger := log.With().Str("request_id", id).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))

		c.Next()
	}
}

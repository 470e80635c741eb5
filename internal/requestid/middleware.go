package requestid

import (
	"codeberg.org/awibi/medtech-api/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// response and request header carrying the id
	Header = "X-Request-ID"

	// gin context key holding the id
	ContextKey = "request_id"
)

// returns a gin middleware that tags every request with an id and a scoped logger
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// only trust well-formed incoming ids, echoed back in canonical form
		id := uuid.NewString()
		if parsed, err := uuid.Parse(c.GetHeader(Header)); err == nil {
			id = parsed.String()
		}

		c.Set(ContextKey, id)
		c.Header(Header, id)

		scoped := logger.FromContext(c.Request.Context()).With("request_id", id)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), scoped))

		c.Next()
	}
}

// returns the id assigned to the request, if any
func FromContext(c *gin.Context) string {
	return c.GetString(ContextKey)
}

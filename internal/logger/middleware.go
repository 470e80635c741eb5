package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// returns a gin middleware that logs each handled request at debug level
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		FromContext(c.Request.Context()).Debug("request handled",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

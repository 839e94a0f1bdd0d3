package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request. Besides the usual method/path/status
// it carries the response size and any errors handlers attached to the gin
// context, since most failures here originate from upstream calls.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}

		var errs string
		if len(c.Errors) > 0 {
			msgs := make([]string, 0, len(c.Errors))
			for _, e := range c.Errors {
				msgs = append(msgs, e.Error())
			}
			errs = " errors=" + strings.Join(msgs, ";")
		}

		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f bytes=%d ip=%s%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
			size,
			c.ClientIP(),
			errs,
		)
	}
}

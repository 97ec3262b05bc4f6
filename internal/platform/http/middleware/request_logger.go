package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestLogger writes one structured line per request once the handler chain
// has finished. 5xx is logged at error level, 4xx at warn, everything else at info.
// It must run after RequestID so the line carries the request ID.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		logger := log.Ctx(c.Request.Context())

		var e *zerolog.Event
		switch {
		case status >= 500:
			e = logger.Error()
			if err := c.Errors.Last(); err != nil {
				e = e.Err(err.Err)
			}
		case status >= 400:
			e = logger.Warn()
		default:
			e = logger.Info()
		}

		e.Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("API")
	}
}

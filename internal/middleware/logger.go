package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per completed request.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		errMsg := c.Errors.ByType(gin.ErrorTypePrivate).String()

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s client_ip=%s size=%d error=%q", c.Request.Method, path, status, latency, c.ClientIP(), c.Writer.Size(), errMsg)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s client_ip=%s size=%d", c.Request.Method, path, status, latency, c.ClientIP(), c.Writer.Size())
		default:
			m.l.Infof(ctx, "%s %s %d %s client_ip=%s size=%d", c.Request.Method, path, status, latency, c.ClientIP(), c.Writer.Size())
		}
	}
}

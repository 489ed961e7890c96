package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, " +
		"accept, origin, Cache-Control, X-Requested-With, " + HeaderRequestID
	corsAllowMethods = "POST, OPTIONS, GET"
	wildcardOrigin   = "*"
)

// CORS answers preflight requests and sets the allow-origin header for
// configured origins. With no origins configured, no origin is allowed.
func (m Middleware) CORS() gin.HandlerFunc {
	allowAll := slices.Contains(m.cors.AllowedOrigins, wildcardOrigin)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" {
			switch {
			case allowAll:
				c.Header("Access-Control-Allow-Origin", wildcardOrigin)
			case slices.Contains(m.cors.AllowedOrigins, origin):
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
		}

		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Expose-Headers", HeaderRequestID)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

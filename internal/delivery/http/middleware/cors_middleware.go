package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware only answers origins listed in ALLOWED_ORIGINS. Requests from
// other origins get no CORS headers and the browser blocks them.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(o, "/")] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Empty origin (same-origin requests) - allow
		isAllowed := origin == "" || allowed[origin]

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID, Retry-After")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}

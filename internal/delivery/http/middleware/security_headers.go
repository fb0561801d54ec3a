package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds the baseline security headers of a JSON API.
func SecurityHeadersMiddleware(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if production {
			// HSTS only makes sense behind TLS
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

		// Conversations and decks are private to the caller
		if c.GetHeader("Authorization") != "" {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
		}

		c.Next()
	}
}

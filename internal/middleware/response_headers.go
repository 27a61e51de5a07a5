package middleware

import (
	"github.com/gin-gonic/gin"
)

// StubHeader marks every response as coming from the stub server so it is
// never mistaken for a real service in captured traffic.
const StubHeader = "X-Campaign-Stub"

// ResponseHeadersMiddleware adds the stub marker and no-cache headers to all
// responses. Sign-up records change on every PUT and must not be cached.
func ResponseHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(StubHeader, "true")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
		c.Header("Pragma", "no-cache")

		c.Next()
	}
}

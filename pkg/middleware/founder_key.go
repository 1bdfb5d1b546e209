package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FounderKeyMiddleware rejects any request whose ?key= query parameter
// does not match the configured founder secret. The check runs before any
// handler logic, so a mismatch has no side effects.
func FounderKeyMiddleware(founderKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(founderKey)) != 1 {
			c.String(http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

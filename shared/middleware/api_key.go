package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	APIKeyHeader       = "x-api-key"
	invalidAPIKeyError = "Invalid or missing API Key"
)

// APIKeyAuth rejects requests whose x-api-key header does not equal secret.
// Rejected requests never reach later handlers.
func APIKeyAuth(secret string) gin.HandlerFunc {
	expected := []byte(secret)

	return func(c *gin.Context) {
		provided := []byte(c.GetHeader(APIKeyHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(provided, expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": invalidAPIKeyError})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the shared-credential header checked by APIKey.
const APIKeyHeader = "X-API-Key"

// APIKey gates an endpoint behind the single shared credential.
func APIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(APIKeyHeader) != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"type":       "unauthorized",
					"message":    "Invalid API Key",
					"request_id": RequestIDFrom(c),
				},
			})
			return
		}
		c.Next()
	}
}

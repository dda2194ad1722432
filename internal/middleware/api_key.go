package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "reanalyzer/internal/errors"
)

// APIKeyHeader carries the shared secret guarding scenario routes.
const APIKeyHeader = "X-API-Key"

// APIKey returns a Gin middleware that validates the X-API-Key header against
// apiKey. An empty apiKey disables the check.
func APIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

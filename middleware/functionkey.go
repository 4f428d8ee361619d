package middleware

import (
	"crypto/subtle"
	"net/http"

	"abc-retail/models"

	"github.com/gin-gonic/gin"
)

const FunctionKeyHeader = "x-functions-key"

// FunctionKeyMiddleware checks the function key header; an empty key disables the check.
func FunctionKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(FunctionKeyHeader)
		if provided == "" {
			provided = c.Query("code")
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or missing function key",
			})
			return
		}

		c.Next()
	}
}

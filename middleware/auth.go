package middleware

import (
	"net/http"
	"strings"

	"abc-retail/models"
	"abc-retail/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextEmployeeID    = "employee_id"
	ContextEmployeeEmail = "employee_email"
	ContextEmployeeRole  = "employee_role"
)

// AuthMiddleware admits requests that carry a valid employee bearer token.
func AuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			return
		}

		claims, err := tokens.ValidateToken(tokenParts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextEmployeeID, claims.EmployeeID)
		c.Set(ContextEmployeeEmail, claims.Email)
		c.Set(ContextEmployeeRole, claims.Role)
		c.Next()
	}
}

// EmployeeMiddleware admits any token issued at employee login, whatever the
// employee's role; the role claim is informational.
func EmployeeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextEmployeeID) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Employee account required",
			})
			return
		}

		c.Next()
	}
}

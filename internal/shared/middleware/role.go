package middleware

import (
	"github.com/gin-gonic/gin"

	"eats-backend/internal/shared/authz"
	"eats-backend/internal/shared/response"
)

// RequireOperation gates a route on the authz table. Must run after
// AuthMiddleware.
func RequireOperation(op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetUserRole(c)
		if role == "" {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		if !authz.IsAuthorized(role, op) {
			response.Forbidden(c, "you are not allowed to do this")
			c.Abort()
			return
		}

		c.Next()
	}
}

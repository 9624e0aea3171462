package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	userModel "eats-backend/internal/domains/user/model"
	"eats-backend/internal/shared/response"
	"eats-backend/pkg/jwt"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context. Every failure mode returns the same
// generic 401 so callers cannot probe which part failed.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		role := userModel.Role(claims.Role)
		if !role.Valid() {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// GetUserID returns the authenticated caller's id. Zero value when the
// route is not behind AuthMiddleware.
func GetUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetUserRole returns the authenticated caller's role.
func GetUserRole(c *gin.Context) userModel.Role {
	if v, ok := c.Get(ContextUserRole); ok {
		if role, ok := v.(userModel.Role); ok {
			return role
		}
	}
	return ""
}

// GetUser rebuilds a lightweight user from the token claims. Services
// only rely on the id and role of the caller.
func GetUser(c *gin.Context) *userModel.User {
	return &userModel.User{
		ID:    GetUserID(c),
		Email: c.GetString(ContextUserEmail),
		Role:  GetUserRole(c),
	}
}

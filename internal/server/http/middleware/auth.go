package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oshxona/resto/internal/domain/model"
	pkgAuth "github.com/oshxona/resto/internal/pkg/auth"
)

const (
	// StaffIDContextKey is a gin context key for the authenticated staff id.
	StaffIDContextKey = "staffID"
	// StaffRoleContextKey is a gin context key for the authenticated role.
	StaffRoleContextKey = "staffRole"
)

// TokenParser validates bearer tokens for staff endpoints.
type TokenParser interface {
	ParseToken(token string) (pkgAuth.Claims, error)
}

// AuthRequired ensures the request carries a valid staff token.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(StaffIDContextKey, claims.UserID)
		c.Set(StaffRoleContextKey, claims.Role)
		c.Next()
	}
}

// RoleRequired restricts a route group to the listed roles. It must run
// after AuthRequired.
func RoleRequired(roles ...model.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(StaffRoleContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role, _ := val.(model.StaffRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatus(http.StatusForbidden)
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/dsofts/core/internal/models"
	"github.com/dsofts/core/internal/pkg/jwt"
	"github.com/dsofts/core/internal/pkg/response"
)

const (
	// ContextKeyUserID is the gin context key holding the caller's user id.
	ContextKeyUserID = "user_id"
	// ContextKeyRole is the gin context key holding the caller's role.
	ContextKeyRole = "user_role"
)

// NormalizeToken strips an optional bearer prefix from the Authorization
// header value.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}

// Auth validates the bearer token and stores the caller's identity on the
// context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := NormalizeToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c, "Unauthorized - No token provided")
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				response.Unauthorized(c, "Unauthorized - Token expired")
				return
			}
			response.Unauthorized(c, "Unauthorized - Invalid token")
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// RequireRoles allows the request only when the authenticated caller holds
// one of the given roles. It must run after Auth.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			response.Unauthorized(c, "Unauthorized - User not authenticated")
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "Forbidden - You do not have permission to access this resource")
	}
}

// CurrentUserID returns the authenticated user's id, if any.
func CurrentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextKeyUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// CurrentRole returns the authenticated user's role, if any.
func CurrentRole(c *gin.Context) (models.Role, bool) {
	v, ok := c.Get(ContextKeyRole)
	if !ok {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok && role.Valid()
}

// IsAuthenticated reports whether the request carries a validated identity.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := CurrentUserID(c)
	return ok
}

package jwt

import (
	"fmt"
	"time"

	"github.com/dsofts/core/internal/models"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

const defaultSecret = "dsofts-secret-change-me"

// DefaultLifetime matches the original 7-day token expiry.
const DefaultLifetime = 7 * 24 * time.Hour

var (
	secret   = []byte(defaultSecret)
	lifetime = DefaultLifetime
)

// SetSecret configures the JWT signing secret (call on startup).
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// SetLifetime configures the token lifetime (call on startup).
func SetLifetime(d time.Duration) {
	if d > 0 {
		lifetime = d
	}
}

// Claims is the JWT payload: the authenticated user and their role.
type Claims struct {
	UserID string      `json:"uid"`
	Role   models.Role `json:"role"`
	jwtlib.RegisteredClaims
}

// Sign creates a signed token for the given user ID and role, valid for the
// configured lifetime.
func Sign(userID string, role models.Role) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse validates a token string and returns the claims. Expired tokens fail
// with an error wrapping jwt.ErrTokenExpired.
func Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("unknown role in token")
	}
	return claims, nil
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dsofts/core/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func post(path, body string) *httptest.ResponseRecorder {
	r := gin.New()
	NewHandler(nil).RegisterRoutes(r.Group("/api"), middleware.Auth())

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupRejectsMissingFields(t *testing.T) {
	w := post("/api/auth/signup", `{"name":"Jane"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide name, email, and password")
}

func TestSignupRejectsShortPassword(t *testing.T) {
	w := post("/api/auth/signup", `{"name":"Jane","email":"jane@example.com","password":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 6 characters")
}

func TestLoginRejectsMissingFields(t *testing.T) {
	w := post("/api/auth/login", `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide email and password")
}

func TestMeRequiresToken(t *testing.T) {
	r := gin.New()
	NewHandler(nil).RegisterRoutes(r.Group("/api"), middleware.Auth())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsofts/core/internal/models"
	"github.com/dsofts/core/internal/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(roles ...models.Role) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{Auth()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	r.GET("/protected", append(handlers, func(c *gin.Context) {
		uid, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"uid": uid})
	})...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthNoToken(t *testing.T) {
	w := doGet(newTestRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestAuthInvalidToken(t *testing.T) {
	w := doGet(newTestRouter(), "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthValidToken(t *testing.T) {
	token, err := jwt.Sign("user-1", models.RoleUser)
	require.NoError(t, err)

	w := doGet(newTestRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireRolesForbidsUser(t *testing.T) {
	token, err := jwt.Sign("user-1", models.RoleUser)
	require.NoError(t, err)

	w := doGet(newTestRouter(models.RoleAdmin), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "do not have permission")
}

func TestRequireRolesAllowsAdmin(t *testing.T) {
	token, err := jwt.Sign("admin-1", models.RoleAdmin)
	require.NoError(t, err)

	w := doGet(newTestRouter(models.RoleAdmin), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesMultiple(t *testing.T) {
	token, err := jwt.Sign("user-1", models.RoleUser)
	require.NoError(t, err)

	w := doGet(newTestRouter(models.RoleUser, models.RoleAdmin), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNormalizeToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":    "abc",
		"bearer abc":    "abc",
		"  Bearer abc ": "abc",
		"abc":           "abc",
		"":              "",
		"Bearer ":       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeToken(in), "input %q", in)
	}
}

package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "jane.doe@example.com", "  jane@example.com  "}
	for _, addr := range valid {
		assert.True(t, ValidEmail(addr), addr)
	}

	invalid := []string{"", "plain", "a@b", "@example.com", "a b@example.com"}
	for _, addr := range invalid {
		assert.False(t, ValidEmail(addr), addr)
	}
}

func postContact(body string) *httptest.ResponseRecorder {
	r := gin.New()
	NewHandler(nil).RegisterRoutes(r.Group("/api"))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRejectsMissingFields(t *testing.T) {
	w := postContact(`{"name":"Jane"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide name, email, and message")
}

func TestCreateRejectsBadEmail(t *testing.T) {
	w := postContact(`{"name":"Jane","email":"not-an-email","message":"Hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid email")
}

func TestCreateRejectsBadJSON(t *testing.T) {
	w := postContact(`{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

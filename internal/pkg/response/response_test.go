package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(h gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)
	return w
}

func TestErrorEnvelope(t *testing.T) {
	cases := []struct {
		handler gin.HandlerFunc
		status  int
		body    string
	}{
		{func(c *gin.Context) { BadRequest(c, "bad input") }, http.StatusBadRequest, `{"message":"bad input"}`},
		{func(c *gin.Context) { Unauthorized(c, "no token") }, http.StatusUnauthorized, `{"message":"no token"}`},
		{func(c *gin.Context) { Forbidden(c, "nope") }, http.StatusForbidden, `{"message":"nope"}`},
		{func(c *gin.Context) { NotFound(c, "missing") }, http.StatusNotFound, `{"message":"missing"}`},
		{InternalError, http.StatusInternalServerError, `{"message":"Server error"}`},
	}
	for _, tc := range cases {
		w := run(tc.handler)
		assert.Equal(t, tc.status, w.Code)
		assert.JSONEq(t, tc.body, w.Body.String())
	}
}

func TestMessage(t *testing.T) {
	w := run(func(c *gin.Context) { Message(c, "Deleted") })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Deleted"}`, w.Body.String())
}

func TestCreated(t *testing.T) {
	w := run(func(c *gin.Context) { Created(c, gin.H{"id": "x"}) })
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"x"}`, w.Body.String())
}

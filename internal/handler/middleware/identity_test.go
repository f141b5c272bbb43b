//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shareit/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIdentityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.RequireIdentity(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return router
}

func TestRequireIdentity(t *testing.T) {
	router := newIdentityRouter()

	cases := []struct {
		name       string
		header     string
		expectCode int
	}{
		{name: "valid id", header: "42", expectCode: http.StatusOK},
		{name: "missing header", header: "", expectCode: http.StatusBadRequest},
		{name: "not a number", header: "abc", expectCode: http.StatusBadRequest},
		{name: "zero", header: "0", expectCode: http.StatusBadRequest},
		{name: "negative", header: "-7", expectCode: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set(middleware.SharerHeader, tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.expectCode, w.Code)
		})
	}
}

func TestGetUserIDOutsideMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := middleware.GetUserID(c)
	assert.False(t, ok)
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(capture *string) *gin.Engine {
		r := gin.New()
		r.Use(RequestIDMiddleware())
		r.GET("/ping", func(c *gin.Context) {
			*capture = GetRequestID(c.Request.Context())
			c.String(http.StatusOK, "pong")
		})
		return r
	}

	t.Run("echoes an incoming id", func(t *testing.T) {
		var seen string
		r := newRouter(&seen)

		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		req.Header.Set("X-Request-Id", "abc-123")

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("generates an id when absent", func(t *testing.T) {
		var seen string
		r := newRouter(&seen)

		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
		assert.Equal(t, rr.Header().Get("X-Request-Id"), seen)
	})
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

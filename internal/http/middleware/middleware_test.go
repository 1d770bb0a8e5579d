package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestForwardedAccessToken(t *testing.T) {
	router := gin.New()
	router.Use(ForwardedAccessToken())
	router.GET("/token", func(c *gin.Context) {
		c.String(http.StatusOK, AccessToken(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/token", nil)
	req.Header.Set("x-forwarded-access-token", "  dapi-123 ")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dapi-123", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/token", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDHeader))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	rid := w.Header().Get(RequestIDHeader)
	assert.True(t, strings.HasPrefix(rid, "req_"))
	assert.Equal(t, rid, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "upstream-1")
	router.ServeHTTP(w, req)
	assert.Equal(t, "upstream-1", w.Header().Get(RequestIDHeader))
}

func TestLoggerWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(Logger(zerolog.New(&buf)))
	router.GET("/api/things/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/things/7", nil))

	line := buf.String()
	assert.Contains(t, line, `"path":"/api/things/:id"`)
	assert.Contains(t, line, `"status":204`)
	assert.Contains(t, line, `"request_id":""`)
}

func TestRecoveryHidesPanic(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(Recovery(zerolog.New(&buf)))
	router.GET("/boom", func(c *gin.Context) {
		panic("secret stack detail")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "secret stack detail")
	assert.Contains(t, buf.String(), "secret stack detail")
}

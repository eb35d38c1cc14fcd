package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LogsRequestWithID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := newLogger(&buf, "debug")

	r := gin.New()
	r.Use(RequestID(), Middleware(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request served", line["message"])
	assert.Equal(t, "info", line["severity"])
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, float64(200), line["status"])
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestNew_FallsBackToInfo(t *testing.T) {
	log := newLogger(&bytes.Buffer{}, "nonsense")
	assert.Equal(t, "info", log.Level.String())
}

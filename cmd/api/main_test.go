package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imrishuroy/storefront/internal/catalog"
	"github.com/imrishuroy/storefront/internal/config"
	"github.com/imrishuroy/storefront/internal/events"
	"github.com/imrishuroy/storefront/internal/handlers"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func TestBuildHandlerConfig_LocalDefaults(t *testing.T) {
	hc, err := buildHandlerConfig(context.Background(), config.Config{Currency: "inr"}, testLogger())
	require.NoError(t, err)

	assert.IsType(t, &catalog.MemoryStore{}, hc.Store)
	assert.Equal(t, events.Nop{}, hc.Notifier)
	assert.False(t, hc.Checkout.Enabled())
}

func TestBuildHandlerConfig_Stripe(t *testing.T) {
	hc, err := buildHandlerConfig(context.Background(), config.Config{StripeSecretKey: "sk_test_123", Currency: "inr"}, testLogger())
	require.NoError(t, err)
	assert.True(t, hc.Checkout.Enabled())
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hc, err := buildHandlerConfig(context.Background(), config.Config{Currency: "inr"}, testLogger())
	require.NoError(t, err)
	r := setupRouter(hc, "")

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = get("/api/products")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Products []catalog.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Products, 5)

	assert.Equal(t, handlers.StatusMessage, get("/").Body.String())
}

package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v79"
)

func newStripeTestProvider(t *testing.T, handler http.HandlerFunc) *StripeProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeProvider("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestStripeProvider_CreateSession(t *testing.T) {
	var form map[string]string
	var idempotencyKey string
	provider := newStripeTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		idempotencyKey = r.Header.Get("Idempotency-Key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	})

	session, err := provider.CreateSession(context.Background(), SessionParams{
		Mode:               ModePayment,
		PaymentMethodTypes: []string{PaymentMethodCard},
		Currency:           "inr",
		LineItems:          []LineItem{{Name: "Kurta", UnitAmount: 129900, Quantity: 2}},
		SuccessURL:         "https://example.com/success",
		CancelURL:          "https://example.com/cancel",
		IdempotencyKey:     "attempt-7",
	})
	require.NoError(t, err)

	assert.Equal(t, Session{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, session)
	assert.Equal(t, "payment", form["mode"])
	assert.Equal(t, "card", form["payment_method_types[0]"])
	assert.Equal(t, "inr", form["line_items[0][price_data][currency]"])
	assert.Equal(t, "Kurta", form["line_items[0][price_data][product_data][name]"])
	assert.Equal(t, "129900", form["line_items[0][price_data][unit_amount]"])
	assert.Equal(t, "2", form["line_items[0][quantity]"])
	assert.Equal(t, "https://example.com/success", form["success_url"])
	assert.Equal(t, "https://example.com/cancel", form["cancel_url"])
	assert.Equal(t, "attempt-7", idempotencyKey)
}

func TestStripeProvider_ErrorMessage(t *testing.T) {
	provider := newStripeTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid currency: xyz"}}`))
	})

	_, err := provider.CreateSession(context.Background(), SessionParams{
		Mode:      ModePayment,
		Currency:  "xyz",
		LineItems: []LineItem{{Name: "Kurta", UnitAmount: 100, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid currency: xyz", err.Error())

	var se *stripe.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.HTTPStatusCode)
}

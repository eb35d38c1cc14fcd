package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imrishuroy/storefront/internal/shop"
)

const catalogJSON = `{"products":[
	{"id":1,"title":"Biba Embroidered Kurta","brand":"Biba","price":1299,"rating":4.5,"category":"Women","sizes":["S","M"],"image":""},
	{"id":2,"title":"Classic Men's Shirt","brand":"UrbanVibe","price":999,"rating":4.2,"category":"Men","sizes":["M"],"image":""}
]}`

func newServer(t *testing.T, checkoutBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalogJSON))
	})
	mux.HandleFunc("/api/create-checkout-session", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(checkoutBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs(" 1, 2,,1 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 1}, ids)

	ids, err = parseIDs("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = parseIDs("1,two")
	assert.Error(t, err)
}

func TestRun_Checkout(t *testing.T) {
	srv := newServer(t, `{"url":"https://pay.example/cs_1"}`)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &out, shop.NewClient(srv.URL, nil), []int64{1, 1, 2}))

	assert.Contains(t, out.String(), "Biba Embroidered Kurta")
	assert.Contains(t, out.String(), "Cart (2)")
	assert.Contains(t, out.String(), "Total: ₹3597.00")
	assert.Contains(t, out.String(), "Redirect to: https://pay.example/cs_1")
}

func TestRun_CheckoutError(t *testing.T) {
	srv := newServer(t, `{"error":"payment provider error"}`)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &out, shop.NewClient(srv.URL, nil), []int64{2}))
	assert.Contains(t, out.String(), "checkout error: payment provider error")
}

func TestRun_EmptyCart(t *testing.T) {
	srv := newServer(t, `{"url":"unused"}`)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &out, shop.NewClient(srv.URL, nil), nil))
	assert.Contains(t, out.String(), "Cart is empty")
}

func TestRun_UnknownProduct(t *testing.T) {
	srv := newServer(t, `{}`)
	err := run(context.Background(), &bytes.Buffer{}, shop.NewClient(srv.URL, nil), []int64{42})
	assert.EqualError(t, err, "product 42 not in catalog")
}

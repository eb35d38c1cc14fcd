package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/imrishuroy/storefront/internal/catalog"
	"github.com/imrishuroy/storefront/internal/validation"
)

// ErrCartEmpty is returned by Checkout for a cart with no items; no request is made.
var ErrCartEmpty = errors.New("cart is empty")

// Client talks to the storefront API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the API at baseURL. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Products fetches the catalog.
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}
	var body struct {
		Products []catalog.Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return body.Products, nil
}

// Checkout submits the cart and returns the payment page URL to redirect to.
func (c *Client) Checkout(ctx context.Context, cart *Cart) (string, error) {
	if cart.Len() == 0 {
		return "", ErrCartEmpty
	}

	payload, err := json.Marshal(validation.CheckoutRequest{Items: cart.Lines()})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/create-checkout-session", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	}
	// a body that is not JSON leaves both fields empty
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.URL == "" {
		msg := body.Error
		if msg == "" {
			msg = "unknown"
		}
		return "", fmt.Errorf("checkout error: %s", msg)
	}
	return body.URL, nil
}

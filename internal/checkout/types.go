package checkout

import "context"

const (
	// ModePayment requests a one-off payment session.
	ModePayment = "payment"
	// PaymentMethodCard is the only payment method offered.
	PaymentMethodCard = "card"
)

// LineItem is a provider-facing line: name, unit price in minor units and quantity.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// SessionParams is everything a provider needs to open a checkout session.
type SessionParams struct {
	Mode               string
	PaymentMethodTypes []string
	Currency           string
	LineItems          []LineItem
	SuccessURL         string
	CancelURL          string
	// IdempotencyKey is forwarded to the provider when set.
	IdempotencyKey string
}

// Session is the part of a provider session the storefront keeps.
type Session struct {
	ID  string
	URL string
}

// Provider opens hosted checkout sessions.
type Provider interface {
	CreateSession(ctx context.Context, params SessionParams) (Session, error)
}

// Result describes a created session.
type Result struct {
	SessionID   string
	URL         string
	Currency    string
	AmountMinor int64
	ItemCount   int64
}

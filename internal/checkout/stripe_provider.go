package checkout

import (
	"context"
	"errors"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeProvider creates Stripe Checkout sessions.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider returns a provider using secretKey. Nil backends selects Stripe's API.
func NewStripeProvider(secretKey string, backends *stripe.Backends) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeProvider{api: api}
}

func (p *StripeProvider) CreateSession(ctx context.Context, params SessionParams) (Session, error) {
	sp := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(params.Mode),
		PaymentMethodTypes: stripe.StringSlice(params.PaymentMethodTypes),
		SuccessURL:         stripe.String(params.SuccessURL),
		CancelURL:          stripe.String(params.CancelURL),
	}
	for _, li := range params.LineItems {
		sp.LineItems = append(sp.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(params.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(li.Name),
				},
				UnitAmount: stripe.Int64(li.UnitAmount),
			},
			Quantity: stripe.Int64(li.Quantity),
		})
	}
	sp.Context = ctx
	if params.IdempotencyKey != "" {
		sp.SetIdempotencyKey(params.IdempotencyKey)
	}

	s, err := p.api.CheckoutSessions.New(sp)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) && se.Msg != "" {
			return Session{}, &stripeError{err: se}
		}
		return Session{}, err
	}
	return Session{ID: s.ID, URL: s.URL}, nil
}

// stripeError reports only Stripe's human-readable message; the full error stays reachable via Unwrap.
type stripeError struct {
	err *stripe.Error
}

func (e *stripeError) Error() string { return e.err.Msg }

func (e *stripeError) Unwrap() error { return e.err }

package checkout

import (
	"context"
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/imrishuroy/storefront/internal/apperr"
	"github.com/imrishuroy/storefront/internal/validation"
)

// Options configures a Builder.
type Options struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// Builder turns a cart into a provider checkout session.
type Builder struct {
	provider Provider
	opts     Options
	validate *validatorv10.Validate
}

// NewBuilder returns a Builder. A nil provider leaves checkout disabled.
func NewBuilder(provider Provider, opts Options, v *validatorv10.Validate) *Builder {
	return &Builder{
		provider: provider,
		opts:     opts,
		validate: v,
	}
}

// Enabled reports whether a provider is configured.
func (b *Builder) Enabled() bool {
	return b.provider != nil
}

// CreateSession validates req, builds line items and makes a single provider call.
func (b *Builder) CreateSession(ctx context.Context, req validation.CheckoutRequest, idempotencyKey string) (Result, error) {
	if !b.Enabled() {
		return Result{}, apperr.Configuration("payment provider not configured on server: set STRIPE_SECRET_KEY")
	}
	if len(req.Items) == 0 {
		return Result{}, apperr.Validation("No items provided")
	}
	if err := validation.Check(b.validate, "invalid checkout items", req); err != nil {
		return Result{}, err
	}

	params, err := b.Params(req)
	if err != nil {
		return Result{}, err
	}
	amount, count, err := totals(params.LineItems)
	if err != nil {
		return Result{}, err
	}
	params.IdempotencyKey = idempotencyKey

	session, err := b.provider.CreateSession(ctx, params)
	if err != nil {
		return Result{}, apperr.Provider("payment provider error", err)
	}
	if session.URL == "" {
		return Result{}, apperr.Provider("payment provider error", fmt.Errorf("session %q has no redirect url", session.ID))
	}

	return Result{
		SessionID:   session.ID,
		URL:         session.URL,
		Currency:    params.Currency,
		AmountMinor: amount,
		ItemCount:   count,
	}, nil
}

// Params maps a checkout request to provider session parameters.
// A price too large for minor units is a validation error.
func (b *Builder) Params(req validation.CheckoutRequest) (SessionParams, error) {
	params := SessionParams{
		Mode:               ModePayment,
		PaymentMethodTypes: []string{PaymentMethodCard},
		Currency:           b.opts.Currency,
		LineItems:          make([]LineItem, 0, len(req.Items)),
		SuccessURL:         firstNonEmpty(req.SuccessURL, b.opts.SuccessURL),
		CancelURL:          firstNonEmpty(req.CancelURL, b.opts.CancelURL),
	}
	for i, it := range req.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		unit, err := MinorUnits(it.Price)
		if err != nil {
			return SessionParams{}, apperr.ValidationFields("invalid checkout items", map[string]string{
				fmt.Sprintf("CheckoutRequest.Items[%d].Price", i): err.Error(),
			})
		}
		params.LineItems = append(params.LineItems, LineItem{
			Name:       it.Title,
			UnitAmount: unit,
			Quantity:   qty,
		})
	}
	return params, nil
}

// totals sums the cart amount and unit count, rejecting sums beyond int64.
func totals(items []LineItem) (amount, count int64, err error) {
	sum, units := decimal.Zero, decimal.Zero
	for _, li := range items {
		t, lerr := lineTotal(li.UnitAmount, li.Quantity)
		if lerr != nil {
			return 0, 0, apperr.Validation("cart total out of range")
		}
		sum = sum.Add(t)
		units = units.Add(decimal.NewFromInt(li.Quantity))
	}
	if sum.GreaterThan(maxMinor) || units.GreaterThan(maxMinor) {
		return 0, 0, apperr.Validation("cart total out of range")
	}
	return sum.IntPart(), units.IntPart(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

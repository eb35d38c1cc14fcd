package events

import "time"

// Event types.
const (
	TypeProductCreated  = "product.created"
	TypeProductUpdated  = "product.updated"
	TypeProductDeleted  = "product.deleted"
	TypeCheckoutCreated = "checkout.session_created"
	TypeCheckoutFailed  = "checkout.failed"
)

// Event is the message published for a catalog change or checkout outcome.
type Event struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"`

	ProductID int64 `json:"product_id,omitempty"`

	SessionID   string `json:"session_id,omitempty"`
	Currency    string `json:"currency,omitempty"`
	AmountMinor int64  `json:"amount_minor,omitempty"`
	ItemCount   int64  `json:"item_count,omitempty"`
	// ErrorKind is set on checkout.failed.
	ErrorKind string `json:"error_kind,omitempty"`
}

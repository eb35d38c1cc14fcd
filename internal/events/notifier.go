package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imrishuroy/storefront/internal/aws"
)

// Notifier publishes storefront events.
type Notifier interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop discards events; used when no queue is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// SQSNotifier sends events as JSON messages through an SQS publisher.
type SQSNotifier struct {
	publisher *aws.Publisher
	nowFunc   func() time.Time
}

func NewSQSNotifier(publisher *aws.Publisher) *SQSNotifier {
	return &SQSNotifier{
		publisher: publisher,
		nowFunc:   time.Now,
	}
}

// Publish fills in the event id and timestamp when missing and enqueues the event.
func (n *SQSNotifier) Publish(ctx context.Context, ev Event) error {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = n.nowFunc().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	attrs := map[string]string{
		"event_type": ev.Type,
		"event_id":   ev.EventID,
		"request_id": ev.RequestID,
	}
	if err := n.publisher.Send(ctx, string(body), attrs); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}

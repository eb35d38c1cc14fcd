package main

import (
	"context"
	"encoding/json"
	"fmt"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/imrishuroy/storefront/internal/events"
	"github.com/imrishuroy/storefront/internal/metrics"
)

// Processor turns storefront events from SQS into CloudWatch metrics.
type Processor struct {
	recorder *metrics.Recorder
	log      logrus.FieldLogger
}

// NewProcessor creates a new worker processor.
func NewProcessor(recorder *metrics.Recorder, log logrus.FieldLogger) *Processor {
	return &Processor{
		recorder: recorder,
		log:      log,
	}
}

// Handle processes an SQS batch. Messages whose metrics could not be written are
// reported as batch item failures so only they are redelivered.
func (p *Processor) Handle(ctx context.Context, ev lambdaevents.SQSEvent) (lambdaevents.SQSEventResponse, error) {
	var resp lambdaevents.SQSEventResponse
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			p.log.WithError(err).WithField("message_id", rec.MessageId).Error("worker error")
			resp.BatchItemFailures = append(resp.BatchItemFailures, lambdaevents.SQSBatchItemFailure{
				ItemIdentifier: rec.MessageId,
			})
		}
	}
	return resp, nil
}

func (p *Processor) processMessage(ctx context.Context, rec lambdaevents.SQSMessage) error {
	var ev events.Event
	if err := json.Unmarshal([]byte(rec.Body), &ev); err != nil {
		// redelivery cannot fix a malformed body
		p.log.WithError(err).WithField("message_id", rec.MessageId).Warn("dropping invalid message body")
		return nil
	}

	entry := p.log.WithFields(logrus.Fields{
		"event_id":   ev.EventID,
		"event_type": ev.Type,
		"request_id": ev.RequestID,
	})
	if len(metrics.Datums(ev)) == 0 {
		entry.Debug("no metrics for event type")
		return nil
	}
	if err := p.recorder.Record(ctx, ev); err != nil {
		return fmt.Errorf("record %s: %w", ev.Type, err)
	}
	entry.Info("recorded event metrics")
	return nil
}

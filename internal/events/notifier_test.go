package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imrishuroy/storefront/internal/aws"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSNotifier_Publish(t *testing.T) {
	client := &fakeSQS{}
	n := NewSQSNotifier(aws.NewPublisher(client, "queue-url"))
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n.nowFunc = func() time.Time { return fixed }

	err := n.Publish(context.Background(), Event{Type: TypeProductCreated, ProductID: 6, RequestID: "req-1"})
	require.NoError(t, err)
	require.Len(t, client.inputs, 1)

	in := client.inputs[0]
	var got Event
	require.NoError(t, json.Unmarshal([]byte(*in.MessageBody), &got))
	assert.NotEmpty(t, got.EventID)
	assert.Equal(t, TypeProductCreated, got.Type)
	assert.Equal(t, int64(6), got.ProductID)
	assert.True(t, fixed.Equal(got.OccurredAt))
	assert.Equal(t, TypeProductCreated, *in.MessageAttributes["event_type"].StringValue)
	assert.Equal(t, got.EventID, *in.MessageAttributes["event_id"].StringValue)
	assert.Equal(t, "req-1", *in.MessageAttributes["request_id"].StringValue)
}

func TestSQSNotifier_PublishError(t *testing.T) {
	cause := errors.New("queue gone")
	n := NewSQSNotifier(aws.NewPublisher(&fakeSQS{err: cause}, "queue-url"))

	err := n.Publish(context.Background(), Event{Type: TypeCheckoutFailed})
	assert.ErrorIs(t, err, cause)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(context.Background(), Event{Type: TypeProductDeleted}))
}

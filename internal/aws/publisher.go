package aws

import (
	"context"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// Publisher wraps an SQS client and a queue URL.
type Publisher struct {
	SQS      SQSAPI
	QueueURL string
}

// NewPublisher returns a Publisher bound to a queue URL.
func NewPublisher(sqsClient SQSAPI, queueURL string) *Publisher {
	return &Publisher{
		SQS:      sqsClient,
		QueueURL: queueURL,
	}
}

// Send enqueues a JSON message body. Attributes are sent as String message attributes;
// empty values are skipped since SQS rejects them.
func (p *Publisher) Send(ctx context.Context, body string, attributes map[string]string) error {
	input := &sqs.SendMessageInput{
		QueueUrl:    sdkaws.String(p.QueueURL),
		MessageBody: sdkaws.String(body),
	}
	msgAttrs := map[string]sqstypes.MessageAttributeValue{}
	for k, v := range attributes {
		if v == "" {
			continue
		}
		msgAttrs[k] = sqstypes.MessageAttributeValue{
			DataType:    sdkaws.String("String"),
			StringValue: sdkaws.String(v),
		}
	}
	if len(msgAttrs) > 0 {
		input.MessageAttributes = msgAttrs
	}

	if _, err := p.SQS.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

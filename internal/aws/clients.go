package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/imrishuroy/storefront/internal/config"
)

// Service names an AWS service client a binary can ask for.
type Service int

const (
	ServiceDynamoDB Service = iota
	ServiceSQS
	ServiceCloudWatch
)

// AWSClients holds the requested service clients; the others stay nil.
type AWSClients struct {
	DynamoDB   DynamoDBAPI
	SQS        SQSAPI
	CloudWatch CloudWatchAPI
}

// APIServices lists the clients the API needs for cfg: DynamoDB for a catalog
// table, SQS for an events queue. Empty means the API runs without AWS.
func APIServices(cfg config.Config) []Service {
	var services []Service
	if cfg.CatalogTable != "" {
		services = append(services, ServiceDynamoDB)
	}
	if cfg.EventsQueueURL != "" {
		services = append(services, ServiceSQS)
	}
	return services
}

// NewAWSClients loads AWS config once and builds only the requested clients.
func NewAWSClients(ctx context.Context, services ...Service) (*AWSClients, error) {
	cfg, err := LoadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	clients := &AWSClients{}
	for _, s := range services {
		switch s {
		case ServiceDynamoDB:
			clients.DynamoDB = dynamodb.NewFromConfig(cfg)
		case ServiceSQS:
			clients.SQS = sqs.NewFromConfig(cfg)
		case ServiceCloudWatch:
			clients.CloudWatch = cloudwatch.NewFromConfig(cfg)
		}
	}
	return clients, nil
}

package main

import (
	"context"
	"os"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/imrishuroy/storefront/internal/aws"
	"github.com/imrishuroy/storefront/internal/config"
	"github.com/imrishuroy/storefront/internal/logging"
	"github.com/imrishuroy/storefront/internal/metrics"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	clients, err := aws.NewAWSClients(context.Background(), aws.ServiceCloudWatch)
	if err != nil {
		log.WithError(err).Fatal("failed to init aws clients")
	}
	p := NewProcessor(metrics.NewRecorder(clients.CloudWatch, cfg.MetricsNamespace), log)

	// If RUN_LOCAL=true, process a single simulated message and exit.
	if cfg.RunLocal {
		testBody := os.Getenv("LOCAL_SQS_BODY")
		if testBody == "" {
			testBody = `{"event_id":"local-1","type":"product.created","product_id":1}`
		}
		event := lambdaevents.SQSEvent{
			Records: []lambdaevents.SQSMessage{
				{MessageId: "local-1", Body: testBody},
			},
		}
		resp, _ := p.Handle(context.Background(), event)
		if len(resp.BatchItemFailures) > 0 {
			log.Fatal("local handler failed")
		}
		return
	}

	lambda.Start(p.Handle)
}

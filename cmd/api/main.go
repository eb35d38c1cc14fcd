package main

import (
	"context"
	"net/http"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imrishuroy/storefront/internal/aws"
	"github.com/imrishuroy/storefront/internal/catalog"
	"github.com/imrishuroy/storefront/internal/checkout"
	"github.com/imrishuroy/storefront/internal/config"
	"github.com/imrishuroy/storefront/internal/events"
	"github.com/imrishuroy/storefront/internal/handlers"
	"github.com/imrishuroy/storefront/internal/logging"
	"github.com/imrishuroy/storefront/internal/validation"
)

func setupRouter(cfg handlers.HandlerConfig, clientDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestID(), logging.Middleware(cfg.Log))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)
	handlers.RegisterStatic(r, clientDir)

	return r
}

// buildHandlerConfig picks the catalog store, payment provider and event notifier from cfg.
// AWS clients are only created when a table or queue is configured.
func buildHandlerConfig(ctx context.Context, cfg config.Config, log *logrus.Logger) (handlers.HandlerConfig, error) {
	v := validation.New()
	hc := handlers.HandlerConfig{
		Store:    catalog.NewMemoryStore(catalog.SeedProducts()),
		Notifier: events.Nop{},
		Validate: v,
		Log:      log,
	}

	if services := aws.APIServices(cfg); len(services) > 0 {
		clients, err := aws.NewAWSClients(ctx, services...)
		if err != nil {
			return hc, err
		}
		if cfg.CatalogTable != "" {
			hc.Store = catalog.NewDynamoStore(clients.DynamoDB, cfg.CatalogTable)
			log.WithField("table", cfg.CatalogTable).Info("using dynamodb catalog")
		}
		if cfg.EventsQueueURL != "" {
			hc.Notifier = events.NewSQSNotifier(aws.NewPublisher(clients.SQS, cfg.EventsQueueURL))
			log.WithField("queue_url", cfg.EventsQueueURL).Info("publishing storefront events")
		}
	}

	var provider checkout.Provider
	if cfg.CheckoutEnabled() {
		provider = checkout.NewStripeProvider(cfg.StripeSecretKey, nil)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set: checkout is disabled, catalog still served")
	}
	hc.Checkout = checkout.NewBuilder(provider, checkout.Options{
		Currency:   cfg.Currency,
		SuccessURL: cfg.SuccessURL,
		CancelURL:  cfg.CancelURL,
	}, v)

	return hc, nil
}

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	hc, err := buildHandlerConfig(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to init aws clients")
	}

	r := setupRouter(hc, cfg.ClientDir)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if cfg.RunLocal {
		addr := ":" + cfg.Port
		log.WithFields(logrus.Fields{"addr": addr, "client_dir": cfg.ClientDir}).Info("running local server")
		if err := r.Run(addr); err != nil {
			log.WithError(err).Fatal("failed to run local server")
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req lambdaevents.APIGatewayProxyRequest) (lambdaevents.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

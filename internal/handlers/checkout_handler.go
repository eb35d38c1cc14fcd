package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/imrishuroy/storefront/internal/apperr"
	"github.com/imrishuroy/storefront/internal/events"
	"github.com/imrishuroy/storefront/internal/logging"
	"github.com/imrishuroy/storefront/internal/validation"
)

// IdempotencyKeyHeader lets a client retry one checkout attempt without opening a second session.
const IdempotencyKeyHeader = "Idempotency-Key"

func registerCheckoutRoutes(api *gin.RouterGroup, cfg HandlerConfig) {
	api.POST("/create-checkout-session", func(c *gin.Context) {
		ctx := c.Request.Context()
		requestID := logging.RequestIDFrom(c)

		// an empty body is an empty cart; the builder reports it after the configuration check
		var req validation.CheckoutRequest
		if err := validation.Bind(c, &req); err != nil && !errors.Is(err, io.EOF) {
			respondError(c, cfg.Log, err)
			return
		}

		res, err := cfg.Checkout.CreateSession(ctx, req, c.GetHeader(IdempotencyKeyHeader))
		if err != nil {
			publish(ctx, cfg, events.Event{
				Type:      events.TypeCheckoutFailed,
				ErrorKind: apperr.KindOf(err).String(),
				RequestID: requestID,
			})
			respondError(c, cfg.Log, err)
			return
		}

		cfg.Log.WithFields(logrus.Fields{
			"session_id":   res.SessionID,
			"amount_minor": res.AmountMinor,
			"currency":     res.Currency,
			"request_id":   requestID,
		}).Info("checkout session created")
		publish(ctx, cfg, events.Event{
			Type:        events.TypeCheckoutCreated,
			SessionID:   res.SessionID,
			Currency:    res.Currency,
			AmountMinor: res.AmountMinor,
			ItemCount:   res.ItemCount,
			RequestID:   requestID,
		})
		c.JSON(http.StatusOK, gin.H{"url": res.URL})
	})
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/imrishuroy/storefront/internal/apperr"
	"github.com/imrishuroy/storefront/internal/catalog"
	"github.com/imrishuroy/storefront/internal/checkout"
	"github.com/imrishuroy/storefront/internal/events"
	"github.com/imrishuroy/storefront/internal/logging"
)

// HandlerConfig groups dependencies for the storefront handlers.
type HandlerConfig struct {
	Store    catalog.Store
	Checkout *checkout.Builder
	Notifier events.Notifier
	Validate *validatorv10.Validate
	Log      logrus.FieldLogger
}

// RegisterRoutes registers the catalog, admin and checkout API routes.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	if cfg.Notifier == nil {
		cfg.Notifier = events.Nop{}
	}
	api := r.Group("/api")
	registerProductRoutes(api, cfg)
	registerCheckoutRoutes(api, cfg)
}

// respondError writes the JSON error body for err with the status of its kind.
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.WithError(err).WithField("request_id", logging.RequestIDFrom(c)).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	body := gin.H{"error": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	if appErr.Kind == apperr.KindProvider && appErr.Err != nil {
		body["details"] = appErr.Err.Error()
	}
	if appErr.Kind.Status() >= http.StatusInternalServerError {
		log.WithError(err).WithFields(logrus.Fields{
			"kind":       appErr.Kind.String(),
			"request_id": logging.RequestIDFrom(c),
		}).Error("request failed")
	}
	c.JSON(appErr.Kind.Status(), body)
}

// publish sends ev without failing the request; errors are only logged.
func publish(ctx context.Context, cfg HandlerConfig, ev events.Event) {
	if err := cfg.Notifier.Publish(ctx, ev); err != nil {
		cfg.Log.WithError(err).WithField("event_type", ev.Type).Warn("event not published")
	}
}

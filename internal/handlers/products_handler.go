package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/storefront/internal/apperr"
	"github.com/imrishuroy/storefront/internal/catalog"
	"github.com/imrishuroy/storefront/internal/events"
	"github.com/imrishuroy/storefront/internal/logging"
	"github.com/imrishuroy/storefront/internal/validation"
)

func registerProductRoutes(api *gin.RouterGroup, cfg HandlerConfig) {
	api.GET("/products", func(c *gin.Context) {
		products, err := cfg.Store.List(c.Request.Context())
		if err != nil {
			respondError(c, cfg.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	})

	admin := api.Group("/admin/products")

	admin.POST("", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateProductRequest
		if err := validation.Bind(c, &req); err != nil {
			respondError(c, cfg.Log, err)
			return
		}
		if strings.TrimSpace(req.Title) == "" || req.Price == nil {
			respondError(c, cfg.Log, apperr.Validation("title and price required"))
			return
		}
		if err := validation.Check(cfg.Validate, "invalid product", req); err != nil {
			respondError(c, cfg.Log, err)
			return
		}

		p, err := cfg.Store.Create(ctx, catalog.NewProduct{
			Title:    req.Title,
			Brand:    req.Brand,
			Price:    req.Price.Float(),
			Rating:   req.Rating.Float(),
			Category: req.Category,
			Sizes:    req.Sizes,
			Image:    req.Image,
		})
		if err != nil {
			respondError(c, cfg.Log, err)
			return
		}

		publish(ctx, cfg, events.Event{Type: events.TypeProductCreated, ProductID: p.ID, RequestID: logging.RequestIDFrom(c)})
		c.JSON(http.StatusOK, gin.H{"ok": true, "product": p})
	})

	admin.PUT("/:id", func(c *gin.Context) {
		ctx := c.Request.Context()

		id, ok := productID(c)
		if !ok {
			respondError(c, cfg.Log, apperr.NotFound("product not found"))
			return
		}

		// an empty body is an empty patch
		var req validation.UpdateProductRequest
		if err := validation.Bind(c, &req); err != nil && !errors.Is(err, io.EOF) {
			respondError(c, cfg.Log, err)
			return
		}

		p, err := cfg.Store.Update(ctx, id, catalog.Patch{
			Title:    req.Title,
			Brand:    req.Brand,
			Price:    req.Price.Float(),
			Rating:   req.Rating.Float(),
			Category: req.Category,
			Sizes:    req.Sizes,
			Image:    req.Image,
		})
		if err != nil {
			respondError(c, cfg.Log, err)
			return
		}

		publish(ctx, cfg, events.Event{Type: events.TypeProductUpdated, ProductID: p.ID, RequestID: logging.RequestIDFrom(c)})
		c.JSON(http.StatusOK, gin.H{"ok": true, "product": p})
	})

	admin.DELETE("/:id", func(c *gin.Context) {
		ctx := c.Request.Context()

		// a non-numeric id names no product, so there is nothing to delete
		id, ok := productID(c)
		if ok {
			if err := cfg.Store.Delete(ctx, id); err != nil {
				respondError(c, cfg.Log, err)
				return
			}
			publish(ctx, cfg, events.Event{Type: events.TypeProductDeleted, ProductID: id, RequestID: logging.RequestIDFrom(c)})
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

package validation

import (
	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/storefront/internal/apperr"
)

// Bind decodes the JSON body into out. A malformed body is a validation error.
func Bind(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return &apperr.Error{Kind: apperr.KindValidation, Message: "invalid request body", Err: err}
	}
	return nil
}

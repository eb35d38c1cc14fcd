package validation

import (
	"errors"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/imrishuroy/storefront/internal/apperr"
)

// New returns a configured validator.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// Check runs struct validation and converts failures into a validation error
// carrying per-field messages.
func Check(v *validatorv10.Validate, msg string, s interface{}) error {
	if err := v.Struct(s); err != nil {
		return apperr.ValidationFields(msg, validationErrorsToMap(err))
	}
	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Namespace()] = fe.Error()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}

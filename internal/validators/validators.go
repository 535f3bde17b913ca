// Package validators validates inbound request payloads before they reach
// the service layer. Rules are declared as `validate` struct tags on the
// request models and evaluated with go-playground/validator.
package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a single shared validator instance. The instance
// caches struct metadata, so one validator serves the whole handler layer.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with struct-tag based
// rules enabled.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateStruct checks req against its `validate` tags.
//
// Rule violations are wrapped in [ErrValidation] with the offending fields
// named, so handlers can map them to a 400 with errors.Is. Any other failure
// (e.g. a non-struct argument) is returned as-is.
func (v *RequestValidator) ValidateStruct(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, fieldError.Field())
		}
		return fmt.Errorf("%w: %v", ErrValidation, fields)
	}

	return err
}

package validators

import "errors"

var (
	// ErrValidation is returned when a request payload violates its declared
	// validation rules. The wrapped message names the offending fields.
	ErrValidation = errors.New("request validation failed")
)

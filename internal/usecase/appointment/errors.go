package appointment

import (
	"errors"
	"strings"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
)

// ValidationError carries every violated rule back to the caller. It is
// produced before any remote call is made.
type ValidationError struct {
	Result domain.ValidationResult
}

func (e *ValidationError) Error() string {
	codes := make([]string, 0, len(e.Result.Errors))
	for _, v := range e.Result.Errors {
		codes = append(codes, v.Code)
	}
	return "VALIDATION_ERROR: " + strings.Join(codes, ", ")
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

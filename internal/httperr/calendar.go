package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every failure that can reach the UI from the booking core.
// Remote-call failures are normalized into one of these before leaving the
// use-case layer; raw transport errors never escape.
type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindConflict   Kind = "CALENDAR_CONFLICT"
	KindAuth       Kind = "CALENDAR_AUTH_ERROR"
	KindCalendar   Kind = "CALENDAR_ERROR"
	KindNetwork    Kind = "NETWORK_ERROR"
)

type CalendarError struct {
	Kind      Kind
	Message   string
	Status    int
	Retryable bool
	Err       error
}

func (e *CalendarError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CalendarError) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *CalendarError {
	return &CalendarError{Kind: KindValidation, Message: message, Status: http.StatusBadRequest}
}

func NewConflict(message string) *CalendarError {
	return &CalendarError{Kind: KindConflict, Message: message, Status: http.StatusConflict}
}

func NewAuth(message string, cause error) *CalendarError {
	return &CalendarError{Kind: KindAuth, Message: message, Status: http.StatusServiceUnavailable, Err: cause}
}

func NewCalendar(message string, cause error, retryable bool) *CalendarError {
	return &CalendarError{Kind: KindCalendar, Message: message, Status: http.StatusBadGateway, Retryable: retryable, Err: cause}
}

func NewNetwork(message string, cause error) *CalendarError {
	return &CalendarError{Kind: KindNetwork, Message: message, Status: http.StatusServiceUnavailable, Retryable: true, Err: cause}
}

// KindOf returns the error kind, or "" when err is not a CalendarError.
func KindOf(err error) Kind {
	var ce *CalendarError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsRetryable reports whether a read-only operation may be re-issued after
// this error. Write paths never consult it.
func IsRetryable(err error) bool {
	var ce *CalendarError
	if errors.As(err, &ce) {
		return ce.Retryable
	}
	return false
}

// AsCalendarError unwraps err into a CalendarError when possible.
func AsCalendarError(err error) (*CalendarError, bool) {
	var ce *CalendarError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

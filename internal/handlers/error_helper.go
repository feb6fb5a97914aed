package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
	uc "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/usecase/appointment"
)

// writeError maps core errors onto HTTP responses. Validation and conflict
// responses are actionable; auth and generic calendar failures surface a
// support-contact message with no internal detail.
func writeError(c *gin.Context, err error) {
	if ve, ok := uc.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": string(httperr.KindValidation),
			"message":    "The booking request is invalid.",
			"errors":     ve.Result.Errors,
		})
		return
	}

	if ce, ok := httperr.AsCalendarError(err); ok {
		msg := ""
		switch ce.Kind {
		case httperr.KindValidation:
			msg = ce.Message
		case httperr.KindConflict:
			msg = "That time is no longer available. Please pick another slot."
		case httperr.KindAuth:
			msg = "The booking system is temporarily unavailable. Please contact the clinic."
		default:
			msg = "Something went wrong talking to the calendar. Please try again or contact the clinic."
		}
		httperr.Write(c, ce.Status, string(ce.Kind), msg)
		return
	}

	if httperr.IsBusiness(err, "invalid_state") {
		httperr.Conflict(c, "invalid_state", "The appointment is not in a state that allows this change.")
		return
	}

	httperr.Internal(c, "internal_error", "Unexpected error.")
}

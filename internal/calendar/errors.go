package calendar

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
)

// normalize maps transport and Google API failures onto the core error kinds.
// Nothing rawer than an httperr.CalendarError leaves this package.
func normalize(err error) error {
	if err == nil {
		return nil
	}

	var ce *httperr.CalendarError
	if errors.As(err, &ce) {
		return err
	}

	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		return httperr.NewAuth("calendar token refresh failed", err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusUnauthorized:
			return httperr.NewAuth("calendar rejected the clinic credentials", err)
		case gerr.Code == http.StatusConflict:
			return httperr.NewConflict("the requested time is no longer available")
		case gerr.Code == http.StatusForbidden && isQuotaReason(gerr):
			return httperr.NewCalendar("calendar quota exceeded", err, true)
		case gerr.Code == http.StatusTooManyRequests || gerr.Code >= 500:
			return httperr.NewCalendar("calendar request failed", err, true)
		default:
			return httperr.NewCalendar("calendar request failed", err, false)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return httperr.NewNetwork("calendar request timed out", err)
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return httperr.NewNetwork("calendar is unreachable", err)
	}

	var uerr *url.Error
	if errors.As(err, &uerr) {
		return httperr.NewNetwork("calendar is unreachable", err)
	}

	return httperr.NewCalendar("calendar request failed", err, false)
}

func isQuotaReason(gerr *googleapi.Error) bool {
	for _, e := range gerr.Errors {
		reason := strings.ToLower(e.Reason)
		if strings.Contains(reason, "ratelimit") || strings.Contains(reason, "quota") {
			return true
		}
	}
	return false
}

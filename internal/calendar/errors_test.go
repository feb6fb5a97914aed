package calendar

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
)

func TestNormalizeNil(t *testing.T) {
	assert.NoError(t, normalize(nil))
}

func TestNormalizePassesThroughCalendarErrors(t *testing.T) {
	orig := httperr.NewConflict("slot taken")

	assert.Same(t, orig, normalize(orig).(*httperr.CalendarError))
}

func TestNormalizeOAuthRetrieveError(t *testing.T) {
	err := normalize(&oauth2.RetrieveError{Response: &http.Response{StatusCode: 400}})

	assert.Equal(t, httperr.KindAuth, httperr.KindOf(err))
	assert.False(t, httperr.IsRetryable(err))
}

func TestNormalizeGoogleAPIErrors(t *testing.T) {
	cases := []struct {
		name      string
		in        *googleapi.Error
		kind      httperr.Kind
		retryable bool
	}{
		{"unauthorized", &googleapi.Error{Code: 401}, httperr.KindAuth, false},
		{"conflict", &googleapi.Error{Code: 409}, httperr.KindConflict, false},
		{"rate limited", &googleapi.Error{Code: 429}, httperr.KindCalendar, true},
		{"server error", &googleapi.Error{Code: 500}, httperr.KindCalendar, true},
		{"bad gateway", &googleapi.Error{Code: 502}, httperr.KindCalendar, true},
		{"bad request", &googleapi.Error{Code: 400}, httperr.KindCalendar, false},
		{"not found", &googleapi.Error{Code: 404}, httperr.KindCalendar, false},
		{
			"quota exceeded",
			&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "rateLimitExceeded"}}},
			httperr.KindCalendar,
			true,
		},
		{
			"plain forbidden",
			&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "forbidden"}}},
			httperr.KindCalendar,
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := normalize(tc.in)

			assert.Equal(t, tc.kind, httperr.KindOf(err))
			assert.Equal(t, tc.retryable, httperr.IsRetryable(err))
		})
	}
}

func TestNormalizeContextErrors(t *testing.T) {
	for _, in := range []error{context.DeadlineExceeded, context.Canceled} {
		err := normalize(in)

		assert.Equal(t, httperr.KindNetwork, httperr.KindOf(err))
		assert.True(t, httperr.IsRetryable(err))
	}
}

func TestNormalizeURLError(t *testing.T) {
	err := normalize(&url.Error{
		Op:  "Post",
		URL: "https://www.googleapis.com/calendar/v3",
		Err: errors.New("connection refused"),
	})

	assert.Equal(t, httperr.KindNetwork, httperr.KindOf(err))
	assert.True(t, httperr.IsRetryable(err))
}

func TestNormalizeUnknownError(t *testing.T) {
	err := normalize(errors.New("boom"))

	ce, ok := httperr.AsCalendarError(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindCalendar, ce.Kind)
	assert.False(t, ce.Retryable)
}

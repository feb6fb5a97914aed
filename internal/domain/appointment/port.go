package appointment

import (
	"context"
	"time"
)

// CalendarPort is the boundary to the clinic's calendar. Implementations
// normalize every failure into an httperr.CalendarError before returning.
type CalendarPort interface {
	// FreeBusy returns the busy intervals of the primary calendar over
	// [timeMin, timeMax].
	FreeBusy(ctx context.Context, timeMin, timeMax time.Time) ([]BusyInterval, error)

	CreateEvent(ctx context.Context, in EventInput) (*EventRecord, error)
	UpdateEvent(ctx context.Context, eventID string, in EventInput) (*EventRecord, error)
	GetEvent(ctx context.Context, eventID string) (*EventRecord, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time

	// AttendeeEmail adds the patient as an event attendee when set.
	AttendeeEmail string

	// WithMeet requests a conferencing link on the created event.
	WithMeet bool
}

type EventRecord struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Status      string
	MeetLink    string
	Attendee    string
}

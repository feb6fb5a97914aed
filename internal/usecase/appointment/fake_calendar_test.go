package appointment

import (
	"context"
	"time"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/retry"
)

// fakeCalendar scripts the calendar port and counts every call, so tests can
// assert that failed validation never reaches the calendar and that write
// paths are never retried.
type fakeCalendar struct {
	busy         []domain.BusyInterval
	freeBusyErrs []error
	freeBusyN    int

	createErr  error
	createN    int
	lastCreate domain.EventInput

	getRecord *domain.EventRecord
	getErr    error
	getN      int

	updateErr  error
	updateN    int
	lastUpdate domain.EventInput

	deleteErr error
	deleteN   int
}

func (f *fakeCalendar) FreeBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error) {
	f.freeBusyN++
	if len(f.freeBusyErrs) > 0 {
		err := f.freeBusyErrs[0]
		f.freeBusyErrs = f.freeBusyErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.busy, nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.EventRecord, error) {
	f.createN++
	f.lastCreate = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.EventRecord{
		ID:          "evt-123",
		Summary:     in.Summary,
		Description: in.Description,
		Start:       in.Start,
		End:         in.End,
		Status:      "confirmed",
		MeetLink:    "https://meet.google.com/abc-defg-hij",
		Attendee:    in.AttendeeEmail,
	}, nil
}

func (f *fakeCalendar) UpdateEvent(ctx context.Context, eventID string, in domain.EventInput) (*domain.EventRecord, error) {
	f.updateN++
	f.lastUpdate = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &domain.EventRecord{
		ID:          eventID,
		Summary:     in.Summary,
		Description: in.Description,
		Start:       in.Start,
		End:         in.End,
		Status:      "confirmed",
		Attendee:    in.AttendeeEmail,
	}, nil
}

func (f *fakeCalendar) GetEvent(ctx context.Context, eventID string) (*domain.EventRecord, error) {
	f.getN++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getRecord, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	f.deleteN++
	return f.deleteErr
}

var _ domain.CalendarPort = (*fakeCalendar)(nil)

// testPolicy keeps retries fast.
func testPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    2 * time.Millisecond,
	}
}

// testNow is a Wednesday morning; "next Monday" below is 2026-01-12.
var testNow = time.Date(2026, 1, 7, 8, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func monday(h, m int) time.Time {
	return time.Date(2026, 1, 12, h, m, 0, 0, time.UTC)
}

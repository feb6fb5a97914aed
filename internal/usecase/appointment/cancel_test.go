package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
)

func scheduledRecord() *domain.EventRecord {
	form := domain.Form{
		PatientName:  "Alice Carter",
		PatientEmail: "alice@example.com",
		PatientPhone: "+1 555 0100",
	}
	return &domain.EventRecord{
		ID:          "evt-123",
		Summary:     "Physiotherapy - Alice Carter",
		Description: domain.BuildDescription(form),
		Start:       monday(9, 0),
		End:         monday(10, 0),
		Status:      "confirmed",
		Attendee:    "alice@example.com",
	}
}

func newCancelUC(f *fakeCalendar) *CancelAppointment {
	uc := NewCancelAppointment(f, testPolicy(), nil, zap.NewNop())
	uc.now = fixedNow
	return uc
}

func TestCancelScheduledAppointment(t *testing.T) {
	f := &fakeCalendar{getRecord: scheduledRecord()}
	uc := newCancelUC(f)

	ap, err := uc.Execute(context.Background(), "evt-123", "req-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, ap.Status)
	assert.Equal(t, "Alice Carter", ap.PatientName)
	assert.Equal(t, 1, f.getN)
	assert.Equal(t, 1, f.deleteN)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	rec := scheduledRecord()
	rec.Status = "cancelled"
	f := &fakeCalendar{getRecord: rec}
	uc := newCancelUC(f)

	_, err := uc.Execute(context.Background(), "evt-123", "req-1")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Zero(t, f.deleteN)
}

func TestCancelCompletedAppointment(t *testing.T) {
	rec := scheduledRecord()
	rec.Start = rec.Start.AddDate(0, 0, -14)
	rec.End = rec.End.AddDate(0, 0, -14) // ended well before now
	f := &fakeCalendar{getRecord: rec}
	uc := newCancelUC(f)

	_, err := uc.Execute(context.Background(), "evt-123", "req-1")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Zero(t, f.deleteN)
}

func TestCancelPropagatesLookupError(t *testing.T) {
	f := &fakeCalendar{getErr: httperr.NewCalendar("event not found", nil, false)}
	uc := newCancelUC(f)

	_, err := uc.Execute(context.Background(), "missing", "req-1")

	assert.Equal(t, httperr.KindCalendar, httperr.KindOf(err))
	assert.Zero(t, f.deleteN)
}

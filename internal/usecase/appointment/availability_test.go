package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
)

func TestCheckAvailabilityFreeSlot(t *testing.T) {
	f := &fakeCalendar{}
	uc := NewCheckAvailability(f, testPolicy())

	res, err := uc.Execute(context.Background(), monday(9, 0), monday(10, 0))

	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Empty(t, res.BusyTimes)
}

func TestCheckAvailabilityConflict(t *testing.T) {
	f := &fakeCalendar{
		busy: []domain.BusyInterval{{Start: monday(9, 0), End: monday(10, 0)}},
	}
	uc := NewCheckAvailability(f, testPolicy())

	res, err := uc.Execute(context.Background(), monday(9, 30), monday(10, 30))

	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Len(t, res.BusyTimes, 1)
}

func TestCheckAvailabilityBoundaryTouchIsFree(t *testing.T) {
	f := &fakeCalendar{
		busy: []domain.BusyInterval{{Start: monday(9, 0), End: monday(10, 0)}},
	}
	uc := NewCheckAvailability(f, testPolicy())

	res, err := uc.Execute(context.Background(), monday(10, 0), monday(11, 0))

	require.NoError(t, err)
	assert.True(t, res.Available)
}

// Same inputs, same busy intervals, same answer.
func TestCheckAvailabilityIsIdempotent(t *testing.T) {
	f := &fakeCalendar{
		busy: []domain.BusyInterval{{Start: monday(14, 0), End: monday(15, 0)}},
	}
	uc := NewCheckAvailability(f, testPolicy())

	first, err := uc.Execute(context.Background(), monday(14, 30), monday(15, 30))
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), monday(14, 30), monday(15, 30))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, f.freeBusyN, "busy intervals are fetched fresh on every call")
}

func TestGetAvailableSlotsMarksBusy(t *testing.T) {
	f := &fakeCalendar{
		busy: []domain.BusyInterval{{Start: monday(9, 0), End: monday(10, 0)}},
	}
	uc := NewGetAvailableSlots(f, domain.DefaultRules(), time.UTC, testPolicy())
	uc.now = fixedNow

	slots, err := uc.Execute(context.Background(), monday(0, 0), monday(0, 0), 60)

	require.NoError(t, err)
	require.Len(t, slots, 7)
	assert.Equal(t, 1, f.freeBusyN, "one freebusy query covers the whole range")

	for _, s := range slots {
		if s.Start.Hour() == 9 {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available, s.DisplayTime)
		}
	}
}

func TestGetAvailableSlotsDropsSlotsAlreadyStarted(t *testing.T) {
	f := &fakeCalendar{}
	uc := NewGetAvailableSlots(f, domain.DefaultRules(), time.UTC, testPolicy())
	uc.now = func() time.Time { return monday(10, 30) }

	slots, err := uc.Execute(context.Background(), monday(0, 0), monday(0, 0), 60)

	require.NoError(t, err)

	hours := make([]int, 0, len(slots))
	for _, s := range slots {
		hours = append(hours, s.Start.Hour())
	}
	// 09:00 and 10:00 are not strictly after 10:30
	assert.Equal(t, []int{11, 13, 14, 15, 16}, hours)
}

func TestGetAvailableSlotsEmptyRange(t *testing.T) {
	f := &fakeCalendar{}
	uc := NewGetAvailableSlots(f, domain.DefaultRules(), time.UTC, testPolicy())
	uc.now = fixedNow

	// Saturday and Sunday only
	slots, err := uc.Execute(context.Background(),
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		60)

	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Zero(t, f.freeBusyN, "nothing to query when no candidate slots exist")
}

func TestGetAvailableSlotsRejectsOutOfRangeDuration(t *testing.T) {
	f := &fakeCalendar{}
	uc := NewGetAvailableSlots(f, domain.DefaultRules(), time.UTC, testPolicy())
	uc.now = fixedNow

	for _, d := range []int{10, 200} {
		_, err := uc.Execute(context.Background(), monday(0, 0), monday(0, 0), d)

		ve, ok := AsValidationError(err)
		require.True(t, ok, "duration %d", d)
		assert.True(t, ve.Result.HasViolation("invalid_duration"))
	}
	assert.Zero(t, f.freeBusyN)
}

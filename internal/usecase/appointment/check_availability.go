package appointment

import (
	"context"
	"time"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/retry"
)

type AvailabilityResult struct {
	Available bool                  `json:"available"`
	BusyTimes []domain.BusyInterval `json:"busyTimes"`
}

// CheckAvailability answers whether one candidate interval is free. Busy
// intervals come straight from the calendar on every call; nothing is cached.
type CheckAvailability struct {
	cal   domain.CalendarPort
	retry retry.Policy
}

func NewCheckAvailability(cal domain.CalendarPort, policy retry.Policy) *CheckAvailability {
	return &CheckAvailability{cal: cal, retry: policy}
}

func (uc *CheckAvailability) Execute(ctx context.Context, start, end time.Time) (*AvailabilityResult, error) {
	var busy []domain.BusyInterval
	err := uc.retry.Do(ctx, func(ctx context.Context) error {
		var ferr error
		busy, ferr = uc.cal.FreeBusy(ctx, start, end)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{
		Available: domain.SlotAvailable(start, end.Sub(start), busy),
		BusyTimes: busy,
	}, nil
}

package appointment

import (
	"context"
	"time"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/retry"
)

type GetAppointment struct {
	cal   domain.CalendarPort
	retry retry.Policy
	now   func() time.Time
}

func NewGetAppointment(cal domain.CalendarPort, policy retry.Policy) *GetAppointment {
	return &GetAppointment{
		cal:   cal,
		retry: policy,
		now:   time.Now,
	}
}

func (uc *GetAppointment) Execute(ctx context.Context, eventID string) (*domain.Appointment, error) {
	var rec *domain.EventRecord
	err := uc.retry.Do(ctx, func(ctx context.Context) error {
		var gerr error
		rec, gerr = uc.cal.GetEvent(ctx, eventID)
		return gerr
	})
	if err != nil {
		return nil, err
	}

	return toAppointment(rec, uc.now()), nil
}

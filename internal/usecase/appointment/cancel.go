package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/audit"
	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/retry"
)

type CancelAppointment struct {
	cal   domain.CalendarPort
	retry retry.Policy
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewCancelAppointment(
	cal domain.CalendarPort,
	policy retry.Policy,
	aud *audit.Dispatcher,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		cal:   cal,
		retry: policy,
		audit: aud,
		log:   log,
		now:   time.Now,
	}
}

func (uc *CancelAppointment) Execute(ctx context.Context, eventID, requestID string) (*domain.Appointment, error) {
	var rec *domain.EventRecord
	err := uc.retry.Do(ctx, func(ctx context.Context) error {
		var gerr error
		rec, gerr = uc.cal.GetEvent(ctx, eventID)
		return gerr
	})
	if err != nil {
		return nil, err
	}

	ap := toAppointment(rec, uc.now())
	if err := domain.CanCancel(ap.Status); err != nil {
		return nil, err
	}

	// Write path: one attempt, runs to completion.
	if err := uc.cal.DeleteEvent(context.WithoutCancel(ctx), eventID); err != nil {
		uc.log.Warn("cancel failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: requestID,
		Action:    "booking_cancelled",
		Entity:    "appointment",
		EventID:   eventID,
	})

	ap.Status = domain.StatusCancelled
	return ap, nil
}

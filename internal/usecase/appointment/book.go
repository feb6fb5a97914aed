package appointment

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/audit"
	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/retry"
)

// ======================================================
// BOOK APPOINTMENT
// ======================================================

type BookInput struct {
	Form        domain.Form
	DurationMin int

	// RequestID ties audit entries to the HTTP request.
	RequestID string
}

type BookAppointment struct {
	cal   domain.CalendarPort
	rules domain.BusinessRules
	loc   *time.Location
	retry retry.Policy
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewBookAppointment(
	cal domain.CalendarPort,
	rules domain.BusinessRules,
	loc *time.Location,
	policy retry.Policy,
	aud *audit.Dispatcher,
	log *zap.Logger,
) *BookAppointment {
	return &BookAppointment{
		cal:   cal,
		rules: rules,
		loc:   loc,
		retry: policy,
		audit: aud,
		log:   log,
		now:   time.Now,
	}
}

func (uc *BookAppointment) Execute(ctx context.Context, in BookInput) (*domain.Appointment, error) {
	log := uc.log.With(
		zap.String("op", "book"),
		zap.String("request_id", in.RequestID),
	)

	// --------------------------------------------------
	// validating — no remote call is made past a failure
	// --------------------------------------------------
	log.Debug("state transition", zap.String("state", string(StateValidating)))

	res := domain.Validate(in.Form, in.DurationMin, uc.now().In(uc.loc), uc.rules, uc.loc)
	if !res.IsValid {
		return nil, &ValidationError{Result: res}
	}

	start, err := domain.CombineDateTime(in.Form.Date, in.Form.Time, uc.loc)
	if err != nil {
		// Validate already parsed this; kept as a guard.
		return nil, httperr.NewValidation("appointment date or time is malformed")
	}

	duration := time.Duration(in.DurationMin) * time.Minute
	end := start.Add(duration)

	// --------------------------------------------------
	// checking_availability — read path, retried
	// --------------------------------------------------
	log.Debug("state transition", zap.String("state", string(StateCheckingAvailability)))

	var busy []domain.BusyInterval
	err = uc.retry.Do(ctx, func(ctx context.Context) error {
		var ferr error
		busy, ferr = uc.cal.FreeBusy(ctx, start, end)
		return ferr
	})
	if err != nil {
		log.Warn("availability check failed", zap.Error(err))
		return nil, err
	}

	if !domain.SlotAvailable(start, duration, busy) {
		uc.audit.Dispatch(audit.Event{
			RequestID: in.RequestID,
			Action:    "booking_conflict",
			Entity:    "appointment",
			Metadata:  map[string]any{"start": start, "end": end},
		})
		return nil, httperr.NewConflict("the requested time is no longer available")
	}

	// --------------------------------------------------
	// creating_event — write path, never retried; the pre-check above is a
	// UX hint only, the calendar's own 409 is the authority. The call runs
	// to completion even if the client goes away.
	// --------------------------------------------------
	log.Debug("state transition", zap.String("state", string(StateCreatingEvent)))

	createCtx := context.WithoutCancel(ctx)
	rec, err := uc.cal.CreateEvent(createCtx, domain.EventInput{
		Summary:       "Physiotherapy - " + strings.TrimSpace(in.Form.PatientName),
		Description:   domain.BuildDescription(in.Form),
		Start:         start,
		End:           end,
		AttendeeEmail: strings.TrimSpace(in.Form.PatientEmail),
		WithMeet:      true,
	})
	if err != nil {
		log.Warn("event creation failed",
			zap.String("kind", string(httperr.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("appointment booked",
		zap.String("event_id", rec.ID),
		zap.Time("start", start),
		zap.String("state", string(StateDone)),
	)

	uc.audit.Dispatch(audit.Event{
		RequestID: in.RequestID,
		Action:    "booking_created",
		Entity:    "appointment",
		EventID:   rec.ID,
		Metadata:  map[string]any{"start": start, "end": end},
	})

	ap := toAppointment(rec, uc.now())
	ap.Status = domain.StatusScheduled
	ap.PatientName = strings.TrimSpace(in.Form.PatientName)
	ap.PatientEmail = strings.TrimSpace(in.Form.PatientEmail)
	ap.PatientPhone = strings.TrimSpace(in.Form.PatientPhone)
	ap.Notes = in.Form.Notes
	ap.Assessment = in.Form.Assessment

	return ap, nil
}

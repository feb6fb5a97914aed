package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/audit"
	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/retry"
)

// ======================================================
// RESCHEDULE / UPDATE
// ======================================================

type RescheduleInput struct {
	EventID     string
	Form        domain.Form
	DurationMin int
	RequestID   string
}

// RescheduleAppointment follows the simpler two-step path: validate, then
// mutate remotely. No availability pre-check is run here — the event's own
// busy time cannot be told apart in a freebusy response, so the calendar's
// conflict answer at write time is the only authority.
type RescheduleAppointment struct {
	cal   domain.CalendarPort
	rules domain.BusinessRules
	loc   *time.Location
	retry retry.Policy
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewRescheduleAppointment(
	cal domain.CalendarPort,
	rules domain.BusinessRules,
	loc *time.Location,
	policy retry.Policy,
	aud *audit.Dispatcher,
	log *zap.Logger,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		cal:   cal,
		rules: rules,
		loc:   loc,
		retry: policy,
		audit: aud,
		log:   log,
		now:   time.Now,
	}
}

func (uc *RescheduleAppointment) Execute(ctx context.Context, in RescheduleInput) (*domain.Appointment, error) {
	var rec *domain.EventRecord
	err := uc.retry.Do(ctx, func(ctx context.Context) error {
		var gerr error
		rec, gerr = uc.cal.GetEvent(ctx, in.EventID)
		return gerr
	})
	if err != nil {
		return nil, err
	}

	existing := toAppointment(rec, uc.now())
	if err := domain.CanReschedule(existing.Status); err != nil {
		return nil, err
	}

	form := mergeForm(in.Form, existing, uc.loc)

	res := domain.Validate(form, in.DurationMin, uc.now().In(uc.loc), uc.rules, uc.loc)
	if !res.IsValid {
		return nil, &ValidationError{Result: res}
	}

	start, err := domain.CombineDateTime(form.Date, form.Time, uc.loc)
	if err != nil {
		return nil, &ValidationError{Result: res}
	}
	end := start.Add(time.Duration(in.DurationMin) * time.Minute)

	// Write path: one attempt, runs to completion.
	updated, err := uc.cal.UpdateEvent(context.WithoutCancel(ctx), in.EventID, domain.EventInput{
		Summary:       rec.Summary,
		Description:   domain.BuildDescription(form),
		Start:         start,
		End:           end,
		AttendeeEmail: form.PatientEmail,
	})
	if err != nil {
		uc.log.Warn("reschedule failed", zap.String("event_id", in.EventID), zap.Error(err))
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: in.RequestID,
		Action:    "booking_rescheduled",
		Entity:    "appointment",
		EventID:   in.EventID,
		Metadata:  map[string]any{"start": start, "end": end},
	})

	ap := toAppointment(updated, uc.now())
	ap.Status = domain.StatusScheduled
	return ap, nil
}

// mergeForm fills the fields the caller left empty from the existing booking,
// so a reschedule request may carry only the new date and time.
func mergeForm(form domain.Form, existing *domain.Appointment, loc *time.Location) domain.Form {
	if form.PatientName == "" {
		form.PatientName = existing.PatientName
	}
	if form.PatientEmail == "" {
		form.PatientEmail = existing.PatientEmail
	}
	if form.PatientPhone == "" {
		form.PatientPhone = existing.PatientPhone
	}
	if form.Notes == "" {
		form.Notes = existing.Notes
	}
	if form.Assessment == nil {
		form.Assessment = existing.Assessment
	}
	if form.Date == "" {
		form.Date = existing.Start.In(loc).Format("2006-01-02")
	}
	if form.Time == "" {
		form.Time = existing.Start.In(loc).Format("15:04")
	}
	return form
}

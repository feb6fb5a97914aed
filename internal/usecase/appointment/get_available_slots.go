package appointment

import (
	"context"
	"time"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/retry"
)

// GetAvailableSlots intersects the generated candidate slots with the
// calendar's busy intervals over the whole range: one freebusy query per
// request, no matter how many days are asked for.
type GetAvailableSlots struct {
	cal   domain.CalendarPort
	rules domain.BusinessRules
	loc   *time.Location
	retry retry.Policy
	now   func() time.Time
}

func NewGetAvailableSlots(
	cal domain.CalendarPort,
	rules domain.BusinessRules,
	loc *time.Location,
	policy retry.Policy,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		cal:   cal,
		rules: rules,
		loc:   loc,
		retry: policy,
		now:   time.Now,
	}
}

func (uc *GetAvailableSlots) Execute(ctx context.Context, from, to time.Time, durationMin int) ([]domain.TimeSlot, error) {
	if durationMin < uc.rules.MinDurationMin || durationMin > uc.rules.MaxDurationMin {
		return nil, &ValidationError{Result: domain.ValidationResult{
			Errors: []domain.RuleViolation{{
				Code:    "invalid_duration",
				Message: "Appointment duration is out of range.",
			}},
		}}
	}

	slots := domain.GenerateSlots(from, to, durationMin, uc.rules, uc.loc)

	// Drop slots the patient can no longer book.
	cutoff := uc.now().In(uc.loc).Add(uc.rules.MinLead)
	filtered := slots[:0]
	for _, s := range slots {
		if s.Start.After(cutoff) {
			filtered = append(filtered, s)
		}
	}
	slots = filtered

	if len(slots) == 0 {
		return []domain.TimeSlot{}, nil
	}

	windowStart := slots[0].Start
	last := slots[len(slots)-1]
	windowEnd := last.Start.Add(time.Duration(last.DurationMin) * time.Minute)

	var busy []domain.BusyInterval
	err := uc.retry.Do(ctx, func(ctx context.Context) error {
		var ferr error
		busy, ferr = uc.cal.FreeBusy(ctx, windowStart, windowEnd)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	return domain.MarkBusy(slots, busy), nil
}

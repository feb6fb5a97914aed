package appointment

import (
	"strings"
	"time"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/validators"
)

// ===============================
// Business-Rule Validator
// ===============================

type RuleViolation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationResult struct {
	IsValid bool            `json:"isValid"`
	Errors  []RuleViolation `json:"errors"`
}

// Validate checks a booking form against the clinic's business rules. It is
// pure: no clock reads, no I/O. Every violated rule is reported; the check
// never stops at the first failure.
func Validate(form Form, durationMin int, now time.Time, rules BusinessRules, loc *time.Location) ValidationResult {
	var errs []RuleViolation

	add := func(code, message string) {
		errs = append(errs, RuleViolation{Code: code, Message: message})
	}

	if strings.TrimSpace(form.PatientName) == "" {
		add("name_required", "Patient name is required.")
	}

	email := strings.TrimSpace(form.PatientEmail)
	if email == "" {
		add("email_required", "Patient email is required.")
	} else if !validators.IsValidEmail(email) {
		add("email_invalid", "Patient email is not a valid address.")
	}

	if form.Date == "" {
		add("date_required", "Appointment date is required.")
	}
	if form.Time == "" {
		add("time_required", "Appointment time is required.")
	}

	if durationMin < rules.MinDurationMin || durationMin > rules.MaxDurationMin {
		add("invalid_duration", "Appointment duration is out of range.")
	}

	// Time-based rules need a parseable start; their absence is already
	// reported above.
	if form.Date != "" && form.Time != "" {
		start, err := CombineDateTime(form.Date, form.Time, loc)
		if err != nil {
			add("invalid_date_or_time", "Appointment date or time is malformed.")
			return result(errs)
		}

		if !start.After(now.Add(rules.MinLead)) {
			add("in_the_past", "Appointments must be booked in the future.")
		}

		if rules.IsClosedDay(start) {
			add("weekend_not_allowed", "The clinic is closed on weekends.")
		}

		if start.Hour() < rules.OpenHour || start.Hour() >= rules.CloseHour {
			add("outside_business_hours", "Appointments start between 9:00 and 17:00.")
		}

		end := start.Add(time.Duration(durationMin) * time.Minute)
		if end.After(rules.closeAt(start)) {
			add("ends_after_close", "The appointment would end after closing time.")
		}
	}

	return result(errs)
}

func result(errs []RuleViolation) ValidationResult {
	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// HasViolation reports whether the result contains the given rule code.
func (r ValidationResult) HasViolation(code string) bool {
	for _, v := range r.Errors {
		if v.Code == code {
			return true
		}
	}
	return false
}

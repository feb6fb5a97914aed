package dto

import (
	"encoding/json"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
)

// ======================================================
// BOOKING REQUEST
// ======================================================

// BookingRequest is the wire shape of a booking submission. Clients have
// historically sent both camelCase and snake_case field names; the mapping is
// resolved once here, never inside handlers or use cases.
type BookingRequest struct {
	PatientName  string                    `json:"patientName"`
	PatientEmail string                    `json:"patientEmail"`
	PatientPhone string                    `json:"patientPhone"`
	Date         string                    `json:"appointmentDate"`
	Time         string                    `json:"appointmentTime"`
	DurationMin  int                       `json:"duration"`
	Notes        string                    `json:"notes"`
	Assessment   *domain.SymptomAssessment `json:"symptomAssessment"`
}

func (r *BookingRequest) UnmarshalJSON(b []byte) error {
	type wire struct {
		PatientName  string `json:"patientName"`
		PatientEmail string `json:"patientEmail"`
		PatientPhone string `json:"patientPhone"`
		Date         string `json:"appointmentDate"`
		Time         string `json:"appointmentTime"`
		DurationMin  int    `json:"duration"`
		Notes        string `json:"notes"`

		Assessment *domain.SymptomAssessment `json:"symptomAssessment"`

		// snake_case aliases
		PatientNameS  string                    `json:"patient_name"`
		PatientEmailS string                    `json:"patient_email"`
		PatientPhoneS string                    `json:"patient_phone"`
		DateS         string                    `json:"appointment_date"`
		TimeS         string                    `json:"appointment_time"`
		DurationMinS  int                       `json:"duration_min"`
		AssessmentS   *domain.SymptomAssessment `json:"symptom_assessment"`
	}

	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	pick := func(camel, snake string) string {
		if camel != "" {
			return camel
		}
		return snake
	}

	r.PatientName = pick(w.PatientName, w.PatientNameS)
	r.PatientEmail = pick(w.PatientEmail, w.PatientEmailS)
	r.PatientPhone = pick(w.PatientPhone, w.PatientPhoneS)
	r.Date = pick(w.Date, w.DateS)
	r.Time = pick(w.Time, w.TimeS)
	r.Notes = w.Notes

	r.DurationMin = w.DurationMin
	if r.DurationMin == 0 {
		r.DurationMin = w.DurationMinS
	}

	r.Assessment = w.Assessment
	if r.Assessment == nil {
		r.Assessment = w.AssessmentS
	}

	return nil
}

// Form converts the request into the domain booking form.
func (r *BookingRequest) Form() domain.Form {
	return domain.Form{
		PatientName:  r.PatientName,
		PatientEmail: r.PatientEmail,
		PatientPhone: r.PatientPhone,
		Date:         r.Date,
		Time:         r.Time,
		Notes:        r.Notes,
		Assessment:   r.Assessment,
	}
}

package appointment

import (
	"time"

	domain "github.com/Crow-s-Physiotherapy/physio-booking-api/internal/domain/appointment"
)

// toAppointment maps a calendar event back onto the normalized booking
// record, recovering the patient fields from the event description.
func toAppointment(rec *domain.EventRecord, now time.Time) *domain.Appointment {
	name, email, phone, notes, assessment := domain.ParseDescription(rec.Description)

	if email == "" {
		email = rec.Attendee
	}

	return &domain.Appointment{
		EventID:      rec.ID,
		PatientName:  name,
		PatientEmail: email,
		PatientPhone: phone,
		Start:        rec.Start,
		End:          rec.End,
		Status:       domain.StatusFrom(rec.Status, rec.End, now),
		MeetLink:     rec.MeetLink,
		Notes:        notes,
		Assessment:   assessment,
	}
}

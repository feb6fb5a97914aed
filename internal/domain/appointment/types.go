package appointment

import (
	"time"
)

// Form is the raw booking input as submitted by the patient. It stays
// transient; nothing here is persisted.
type Form struct {
	PatientName  string
	PatientEmail string
	PatientPhone string
	Date         string // YYYY-MM-DD
	Time         string // HH:mm
	Notes        string
	Assessment   *SymptomAssessment
}

// SymptomAssessment travels with the booking and is embedded in the calendar
// event description.
type SymptomAssessment struct {
	PainLevel         int      `json:"painLevel"`
	PainLocation      string   `json:"painLocation,omitempty"`
	Symptoms          []string `json:"symptoms,omitempty"`
	PreviousTreatment string   `json:"previousTreatment,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

// TimeSlot is a candidate bookable interval. Recomputed per query, never
// stored.
type TimeSlot struct {
	Start       time.Time `json:"start"`
	DisplayTime string    `json:"displayTime"`
	Available   bool      `json:"available"`
	DurationMin int       `json:"durationMin"`
}

// BusyInterval is a half-open [Start, End) range the calendar reports as
// occupied. Derived per availability check, never cached across requests.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps is the sole conflict test in the system: strict inequalities, so a
// slot touching a busy interval at either boundary is free.
func (b BusyInterval) Overlaps(start time.Time, d time.Duration) bool {
	end := start.Add(d)
	return start.Before(b.End) && end.After(b.Start)
}

// SlotAvailable reports whether [start, start+d) overlaps none of busy.
func SlotAvailable(start time.Time, d time.Duration, busy []BusyInterval) bool {
	for _, b := range busy {
		if b.Overlaps(start, d) {
			return false
		}
	}
	return true
}

// Appointment is the normalized booking record. Its source of truth is the
// clinic's calendar; the EventID points back at the remote event.
type Appointment struct {
	EventID      string             `json:"eventId"`
	PatientName  string             `json:"patientName"`
	PatientEmail string             `json:"patientEmail"`
	PatientPhone string             `json:"patientPhone,omitempty"`
	Start        time.Time          `json:"start"`
	End          time.Time          `json:"end"`
	Status       Status             `json:"status"`
	MeetLink     string             `json:"meetLink,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Assessment   *SymptomAssessment `json:"symptomAssessment,omitempty"`
}

// CombineDateTime parses the form's date and time in the clinic timezone.
func CombineDateTime(date, hm string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hm, loc)
}

package appointment

import (
	"encoding/json"
	"fmt"
	"strings"
)

const assessmentMarker = "--- symptom assessment ---"

// BuildDescription renders the event description stored on the calendar:
// patient contact block, free-form notes, and the symptom assessment in a
// labeled JSON block so it survives the round trip through the calendar.
func BuildDescription(form Form) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Patient: %s\n", strings.TrimSpace(form.PatientName))
	fmt.Fprintf(&b, "Email: %s\n", strings.TrimSpace(form.PatientEmail))
	if form.PatientPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", strings.TrimSpace(form.PatientPhone))
	}

	if form.Notes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", form.Notes)
	}

	if form.Assessment != nil {
		if raw, err := json.Marshal(form.Assessment); err == nil {
			fmt.Fprintf(&b, "\n%s\n%s\n", assessmentMarker, raw)
		}
	}

	return b.String()
}

// ParseDescription recovers the patient contact fields and the symptom
// assessment from an event description written by BuildDescription. Events
// created elsewhere yield zero values, never an error.
func ParseDescription(desc string) (name, email, phone, notes string, assessment *SymptomAssessment) {
	body := desc

	if idx := strings.Index(desc, assessmentMarker); idx >= 0 {
		body = desc[:idx]
		raw := strings.TrimSpace(desc[idx+len(assessmentMarker):])
		var sa SymptomAssessment
		if err := json.Unmarshal([]byte(raw), &sa); err == nil {
			assessment = &sa
		}
	}

	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		switch {
		case strings.HasPrefix(line, "Patient: "):
			name = strings.TrimPrefix(line, "Patient: ")
		case strings.HasPrefix(line, "Email: "):
			email = strings.TrimPrefix(line, "Email: ")
		case strings.HasPrefix(line, "Phone: "):
			phone = strings.TrimPrefix(line, "Phone: ")
		case line == "Notes:":
			rest := lines[i+1:]
			notes = strings.TrimSpace(strings.Join(rest, "\n"))
			return
		}
	}

	return
}

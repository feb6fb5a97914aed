package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRequestCamelCase(t *testing.T) {
	payload := `{
		"patientName": "Alice Carter",
		"patientEmail": "alice@example.com",
		"patientPhone": "+1 555 0100",
		"appointmentDate": "2026-01-12",
		"appointmentTime": "09:00",
		"duration": 60,
		"notes": "lower back",
		"symptomAssessment": {"painLevel": 7, "painLocation": "lower back"}
	}`

	var req BookingRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "Alice Carter", req.PatientName)
	assert.Equal(t, "alice@example.com", req.PatientEmail)
	assert.Equal(t, "2026-01-12", req.Date)
	assert.Equal(t, "09:00", req.Time)
	assert.Equal(t, 60, req.DurationMin)
	require.NotNil(t, req.Assessment)
	assert.Equal(t, 7, req.Assessment.PainLevel)
}

func TestBookingRequestSnakeCase(t *testing.T) {
	payload := `{
		"patient_name": "Alice Carter",
		"patient_email": "alice@example.com",
		"patient_phone": "+1 555 0100",
		"appointment_date": "2026-01-12",
		"appointment_time": "09:00",
		"duration_min": 60,
		"symptom_assessment": {"painLevel": 7}
	}`

	var req BookingRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "Alice Carter", req.PatientName)
	assert.Equal(t, "alice@example.com", req.PatientEmail)
	assert.Equal(t, "+1 555 0100", req.PatientPhone)
	assert.Equal(t, "2026-01-12", req.Date)
	assert.Equal(t, "09:00", req.Time)
	assert.Equal(t, 60, req.DurationMin)
	require.NotNil(t, req.Assessment)
}

// Both naming schemes decode to the same form.
func TestBookingRequestSchemesAreEquivalent(t *testing.T) {
	camel := `{"patientName": "Bob", "appointmentDate": "2026-01-12", "appointmentTime": "10:00", "duration": 45}`
	snake := `{"patient_name": "Bob", "appointment_date": "2026-01-12", "appointment_time": "10:00", "duration_min": 45}`

	var a, b BookingRequest
	require.NoError(t, json.Unmarshal([]byte(camel), &a))
	require.NoError(t, json.Unmarshal([]byte(snake), &b))

	assert.Equal(t, a.Form(), b.Form())
	assert.Equal(t, a.DurationMin, b.DurationMin)
}

func TestBookingRequestCamelWinsWhenBothPresent(t *testing.T) {
	payload := `{"patientName": "Alice", "patient_name": "Eve", "duration": 60, "duration_min": 30}`

	var req BookingRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "Alice", req.PatientName)
	assert.Equal(t, 60, req.DurationMin)
}

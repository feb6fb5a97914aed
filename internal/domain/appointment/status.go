package appointment

import (
	"time"

	"github.com/Crow-s-Physiotherapy/physio-booking-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// StatusFrom derives the appointment status from the remote event: cancelled
// events stay cancelled, past events are completed, anything else is
// scheduled.
func StatusFrom(eventStatus string, end, now time.Time) Status {
	if eventStatus == "cancelled" {
		return StatusCancelled
	}
	if end.Before(now) {
		return StatusCompleted
	}
	return StatusScheduled
}

func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReschedule(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

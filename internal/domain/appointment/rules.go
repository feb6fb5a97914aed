package appointment

import "time"

// BusinessRules is the single source for business-hour boundaries. The
// validator and the slot generator both read from it, so they cannot drift
// apart.
type BusinessRules struct {
	OpenHour  int
	CloseHour int
	LunchHour int

	SlotMinutes int

	MinDurationMin int
	MaxDurationMin int

	MinLead time.Duration
}

func DefaultRules() BusinessRules {
	return BusinessRules{
		OpenHour:       9,
		CloseHour:      17,
		LunchHour:      12,
		SlotMinutes:    60,
		MinDurationMin: 15,
		MaxDurationMin: 180,
		MinLead:        0,
	}
}

func (r BusinessRules) openAt(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), r.OpenHour, 0, 0, 0, day.Location())
}

func (r BusinessRules) closeAt(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), r.CloseHour, 0, 0, 0, day.Location())
}

func (r BusinessRules) lunchAt(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), r.LunchHour, 0, 0, 0, day.Location())
	return start, start.Add(time.Hour)
}

// IsClosedDay reports whether the clinic is closed on the given weekday.
func (r BusinessRules) IsClosedDay(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

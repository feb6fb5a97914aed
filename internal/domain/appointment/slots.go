package appointment

import "time"

// ===============================
// Slot Generator
// ===============================

// GenerateSlots enumerates candidate slots for every day in [from, to]:
// weekends are skipped, starts run from opening to closing at the configured
// granularity, the lunch hour is skipped, and a slot must end by closing
// time. Output is deterministic for identical inputs; availability is decided
// later against the calendar, never locally.
func GenerateSlots(from, to time.Time, durationMin int, rules BusinessRules, loc *time.Location) []TimeSlot {
	duration := time.Duration(durationMin) * time.Minute
	step := time.Duration(rules.SlotMinutes) * time.Minute

	var slots []TimeSlot

	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	last := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)

	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		if rules.IsClosedDay(day) {
			continue
		}

		dayClose := rules.closeAt(day)
		lunchStart, lunchEnd := rules.lunchAt(day)

		for cur := rules.openAt(day); !cur.Add(duration).After(dayClose); cur = cur.Add(step) {
			lunch := BusyInterval{Start: lunchStart, End: lunchEnd}
			if lunch.Overlaps(cur, duration) {
				continue
			}

			slots = append(slots, TimeSlot{
				Start:       cur,
				DisplayTime: cur.Format("15:04"),
				Available:   true,
				DurationMin: durationMin,
			})
		}
	}

	return slots
}

// MarkBusy flags every generated slot that overlaps a busy interval as
// unavailable and returns the same slice.
func MarkBusy(slots []TimeSlot, busy []BusyInterval) []TimeSlot {
	for i := range slots {
		d := time.Duration(slots[i].DurationMin) * time.Minute
		slots[i].Available = SlotAvailable(slots[i].Start, d, busy)
	}
	return slots
}

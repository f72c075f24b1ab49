// README: Free one-hour slot enumeration within working hours.
package recommend

import (
	"time"

	"fieldops/internal/modules/assignment"
)

// FreeSlots enumerates the one-hour slots a contractor can still take on
// the given day. Candidate slot starts run from day+workStartMin in
// one-hour steps while strictly before day+workEndMin; a slot [s, s+1h) is
// dropped when it overlaps any existing assignment's occupied window.
//
// Inverted or empty working hours (end <= start) yield no slots; that is a
// valid schedule, not an error.
func FreeSlots(day time.Time, workStartMin, workEndMin int, busy []assignment.Assignment) []time.Time {
	dayStart := startOfDay(day)
	open := dayStart.Add(time.Duration(workStartMin) * time.Minute)
	end := dayStart.Add(time.Duration(workEndMin) * time.Minute)

	var slots []time.Time
	for s := open; s.Before(end); s = s.Add(slotLength) {
		if slotTaken(s, busy) {
			continue
		}
		slots = append(slots, s)
	}
	return slots
}

func slotTaken(slotStart time.Time, busy []assignment.Assignment) bool {
	slotEnd := slotStart.Add(slotLength)
	for _, a := range busy {
		if overlaps(slotStart, slotEnd, a.StartAt, a.End()) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

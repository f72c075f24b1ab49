// README: Availability check against a contractor's existing assignments.
package recommend

import (
	"time"

	"fieldops/internal/modules/assignment"
)

// IsAvailable reports whether a contractor is free for a job starting at
// `start` and running `durationHours`, given their existing assignments for
// that date. `travelMinutes` widens the window earlier to cover travel to
// the site; every current caller passes zero pending travel-time-aware
// scheduling.
//
// The window is not checked against the contractor's declared working
// hours; only conflicts with existing assignments disqualify. FreeSlots is
// the only place working hours are enforced.
func IsAvailable(busy []assignment.Assignment, start time.Time, durationHours, travelMinutes float64) (bool, error) {
	if durationHours <= 0 {
		return false, ErrBadDuration
	}

	windowStart := start.Add(-time.Duration(travelMinutes * float64(time.Minute)))
	windowEnd := start.Add(time.Duration(durationHours * float64(time.Hour)))

	for _, a := range busy {
		if overlaps(windowStart, windowEnd, a.StartAt, a.End()) {
			return false, nil
		}
	}
	return true, nil
}

// overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back windows do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// README: Assignment links a contractor to a job; its busy window comes from the job.
package assignment

import (
	"time"

	"fieldops/internal/types"
)

type Assignment struct {
	ID           types.ID
	JobID        types.ID
	ContractorID types.ID
	// StartAt and DurationHours are denormalized from the linked job; the
	// assignment row itself carries no independent window.
	StartAt       time.Time
	DurationHours float64
	CreatedAt     time.Time
}

// End returns the exclusive end of the occupied window [StartAt, End).
func (a Assignment) End() time.Time {
	return a.StartAt.Add(time.Duration(a.DurationHours * float64(time.Hour)))
}

// README: Job aggregate consumed by dispatch and recommendation flows.
package job

import (
	"time"

	"fieldops/internal/types"
)

type Job struct {
	ID            types.ID
	Description   string
	JobType       string
	Location      string
	Position      types.Point
	ScheduledAt   time.Time
	DurationHours float64
	CreatedAt     time.Time
}

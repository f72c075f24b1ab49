// README: Contractor aggregate with working hours and review-derived rating.
package contractor

import (
	"time"

	"fieldops/internal/types"
)

type Contractor struct {
	ID       types.ID
	Name     string
	Active   bool
	Position types.Point
	// Working hours as minutes from midnight, no date component.
	// WorkEndMin <= WorkStartMin means the contractor has no bookable hours.
	WorkStartMin int
	WorkEndMin   int
	// Rating is the review average on a 0-5 scale; nil when no reviews exist.
	Rating      *float64
	ReviewCount int
}

type Review struct {
	ID           types.ID
	ContractorID types.ID
	Rating       float64
	Comment      string
	CreatedAt    time.Time
}

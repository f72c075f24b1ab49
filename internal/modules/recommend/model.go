// README: Recommendation scoring model: weights, score components, result shapes.
package recommend

import (
	"errors"
	"time"

	"fieldops/internal/types"
)

const (
	// weightAvailability dominates the blend: a busy contractor should not
	// outrank a free one on rating and proximity alone.
	weightAvailability = 0.4
	weightRating       = 0.3
	weightDistance     = 0.3
	// maxDistanceMiles is the cutoff beyond which the distance score is zero.
	maxDistanceMiles = 50.0
	// unratedBaseline is the rating score for contractors with no reviews;
	// keeps them visible without rewarding the absence of history.
	unratedBaseline = 0.5
	// maxRating is the review scale ceiling used for normalization.
	maxRating = 5.0
	// maxRecommendations caps the returned shortlist.
	maxRecommendations = 5
	// assumedDurationHours is the job length assumed by the availability
	// check. The job's own duration field is intentionally not consulted
	// here; changing that needs product sign-off since it shifts who gets
	// recommended.
	assumedDurationHours = 8.0
	// slotLength is the granularity of the free-slot grid.
	slotLength = time.Hour
)

const (
	MessageSuccess       = "Success"
	MessageNoContractors = "No available contractors"
)

var (
	ErrJobInPast       = errors.New("job is scheduled in the past")
	ErrBadDuration     = errors.New("duration must be positive")
	ErrScoreOutOfRange = errors.New("score component out of range")
)

// ScoreComponents are the three normalized [0,1] signals blended into the
// final score for one contractor against one job.
type ScoreComponents struct {
	Availability float64
	Rating       float64
	Distance     float64
}

type Recommendation struct {
	ContractorID      types.ID    `json:"contractor_id"`
	Name              string      `json:"name"`
	Score             float64     `json:"score"`
	Rating            *float64    `json:"rating"`
	ReviewCount       int         `json:"review_count"`
	DistanceMiles     float64     `json:"distance_miles"`
	TravelTimeMinutes float64     `json:"travel_time_minutes"`
	AvailableSlots    []time.Time `json:"available_slots"`
}

type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message"`
}

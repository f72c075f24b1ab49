// README: Recommendation engine; fans out per-contractor scoring and ranks the survivors.
package recommend

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"fieldops/internal/logging"
	"fieldops/internal/modules/assignment"
	"fieldops/internal/modules/contractor"
	"fieldops/internal/modules/job"
	"fieldops/internal/types"
)

// Collaborator interfaces. The engine owns no state of its own; everything
// it reads comes through these.
type JobRepo interface {
	Get(ctx context.Context, id types.ID) (*job.Job, error)
}

type ContractorRepo interface {
	Get(ctx context.Context, id types.ID) (*contractor.Contractor, error)
	ActiveIDs(ctx context.Context) ([]types.ID, error)
	DispatcherList(ctx context.Context, dispatcherID types.ID) ([]types.ID, error)
}

type AssignmentRepo interface {
	ByContractorOnDate(ctx context.Context, contractorID types.ID, day time.Time) ([]assignment.Assignment, error)
}

type DistanceProvider interface {
	Estimate(ctx context.Context, origin, dest types.Point) (types.DistanceEstimate, error)
}

type Service struct {
	jobs        JobRepo
	contractors ContractorRepo
	assignments AssignmentRepo
	distance    DistanceProvider
	log         *logging.Logger
}

func NewService(jobs JobRepo, contractors ContractorRepo, assignments AssignmentRepo, distance DistanceProvider, log *logging.Logger) *Service {
	return &Service{
		jobs:        jobs,
		contractors: contractors,
		assignments: assignments,
		distance:    distance,
		log:         log,
	}
}

// GetRecommendations scores every contractor in the candidate pool against
// the job and returns the top-scored shortlist. With curatedOnly the pool
// is the requesting dispatcher's contractor list instead of all active
// contractors.
//
// Scoring runs concurrently per contractor; a failure scoring one
// contractor drops that contractor and never fails the batch. Cancellation
// of ctx fails the whole request rather than returning a partial list.
func (s *Service) GetRecommendations(ctx context.Context, jobID, requesterID types.ID, curatedOnly bool) (*Result, error) {
	j, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.ScheduledAt.Before(time.Now().UTC()) {
		return nil, ErrJobInPast
	}

	var pool []types.ID
	if curatedOnly {
		pool, err = s.contractors.DispatcherList(ctx, requesterID)
	} else {
		pool, err = s.contractors.ActiveIDs(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return &Result{Message: MessageNoContractors}, nil
	}

	var wg sync.WaitGroup
	out := make(chan Recommendation, len(pool))
	for _, id := range pool {
		wg.Add(1)
		go func(id types.ID) {
			defer wg.Done()
			rec, err := s.scoreContractor(ctx, j, id)
			if err != nil {
				s.log.Warn("scoring contractor failed",
					"job_id", string(jobID),
					"contractor_id", string(id),
					"err", err)
				return
			}
			if rec != nil {
				out <- *rec
			}
		}(id)
	}
	wg.Wait()
	close(out)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recs := make([]Recommendation, 0, len(pool))
	for rec := range out {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, k int) bool { return recs[i].Score > recs[k].Score })
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	if len(recs) == 0 {
		return &Result{Message: MessageNoContractors}, nil
	}
	return &Result{Recommendations: recs, Message: MessageSuccess}, nil
}

// scoreContractor computes one contractor's recommendation. A nil, nil
// return means the contractor was skipped (missing or inactive); an error
// means this contractor is excluded from the batch.
func (s *Service) scoreContractor(ctx context.Context, j *job.Job, id types.ID) (*Recommendation, error) {
	c, err := s.contractors.Get(ctx, id)
	if errors.Is(err, contractor.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !c.Active {
		return nil, nil
	}

	day := startOfDay(j.ScheduledAt)
	busy, err := s.assignments.ByContractorOnDate(ctx, id, day)
	if err != nil {
		return nil, err
	}

	// Availability is checked against a fixed assumed duration, not the
	// job's own duration field. See assumedDurationHours.
	available, err := IsAvailable(busy, j.ScheduledAt, assumedDurationHours, 0)
	if err != nil {
		return nil, err
	}

	est, err := s.distance.Estimate(ctx, j.Position, c.Position)
	if err != nil {
		return nil, err
	}

	components := ScoreComponents{
		Availability: 0.0,
		Rating:       NormalizeRatingScore(c.Rating),
		Distance:     NormalizeDistanceScore(est.Miles),
	}
	if available {
		components.Availability = 1.0
	}
	score, err := CalculateScore(components.Availability, components.Rating, components.Distance)
	if err != nil {
		return nil, err
	}

	// Slot finding always respects the contractor's real working hours,
	// independent of the assumed duration above.
	slots := FreeSlots(day, c.WorkStartMin, c.WorkEndMin, busy)

	return &Recommendation{
		ContractorID:      c.ID,
		Name:              c.Name,
		Score:             score,
		Rating:            c.Rating,
		ReviewCount:       c.ReviewCount,
		DistanceMiles:     est.Miles,
		TravelTimeMinutes: est.Minutes,
		AvailableSlots:    slots,
	}, nil
}

// GetAvailableTimeSlots returns the contractor's free one-hour slots on the
// given date.
func (s *Service) GetAvailableTimeSlots(ctx context.Context, contractorID types.ID, date time.Time) ([]time.Time, error) {
	c, err := s.contractors.Get(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	day := startOfDay(date)
	busy, err := s.assignments.ByContractorOnDate(ctx, contractorID, day)
	if err != nil {
		return nil, err
	}
	return FreeSlots(day, c.WorkStartMin, c.WorkEndMin, busy), nil
}

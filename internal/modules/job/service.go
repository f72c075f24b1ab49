// README: Job service validates and persists dispatch jobs.
package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fieldops/internal/types"
)

var (
	ErrNotFound   = errors.New("job not found")
	ErrBadRequest = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	Description   string
	JobType       string
	Location      string
	Position      types.Point
	ScheduledAt   time.Time
	DurationHours float64
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.Description == "" || cmd.JobType == "" {
		return "", ErrBadRequest
	}
	if cmd.DurationHours <= 0 {
		return "", ErrBadRequest
	}
	if cmd.ScheduledAt.Before(time.Now().UTC()) {
		return "", ErrBadRequest
	}

	j := &Job{
		ID:            types.ID(uuid.NewString()),
		Description:   cmd.Description,
		JobType:       cmd.JobType,
		Location:      cmd.Location,
		Position:      cmd.Position,
		ScheduledAt:   cmd.ScheduledAt.UTC(),
		DurationHours: cmd.DurationHours,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Create(ctx, j); err != nil {
		return "", err
	}
	return j.ID, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Job, error) {
	return s.store.Get(ctx, id)
}

// README: Contractor service; lookups, candidate pools, and review intake.
package contractor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fieldops/internal/types"
)

var (
	ErrNotFound  = errors.New("contractor not found")
	ErrBadRating = errors.New("rating must be between 0 and 5")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Contractor, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ActiveIDs(ctx context.Context) ([]types.ID, error) {
	return s.store.ActiveIDs(ctx)
}

func (s *Service) DispatcherList(ctx context.Context, dispatcherID types.ID) ([]types.ID, error) {
	return s.store.DispatcherList(ctx, dispatcherID)
}

type ReviewCommand struct {
	ContractorID types.ID
	Rating       float64
	Comment      string
}

func (s *Service) AddReview(ctx context.Context, cmd ReviewCommand) (types.ID, error) {
	if cmd.Rating < 0 || cmd.Rating > 5 {
		return "", ErrBadRating
	}
	if _, err := s.store.Get(ctx, cmd.ContractorID); err != nil {
		return "", err
	}

	r := &Review{
		ID:           types.ID(uuid.NewString()),
		ContractorID: cmd.ContractorID,
		Rating:       cmd.Rating,
		Comment:      cmd.Comment,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.AddReview(ctx, r); err != nil {
		return "", err
	}
	return r.ID, nil
}

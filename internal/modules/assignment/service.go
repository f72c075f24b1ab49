// README: Assignment service; books a contractor onto a job.
package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fieldops/internal/modules/contractor"
	"fieldops/internal/modules/job"
	"fieldops/internal/types"
)

// Collaborator lookups used to validate an assignment before writing it.
type JobGetter interface {
	Get(ctx context.Context, id types.ID) (*job.Job, error)
}

type ContractorGetter interface {
	Get(ctx context.Context, id types.ID) (*contractor.Contractor, error)
}

type Service struct {
	store       *Store
	jobs        JobGetter
	contractors ContractorGetter
}

func NewService(store *Store, jobs JobGetter, contractors ContractorGetter) *Service {
	return &Service{store: store, jobs: jobs, contractors: contractors}
}

type AssignCommand struct {
	JobID        types.ID
	ContractorID types.ID
}

func (s *Service) Assign(ctx context.Context, cmd AssignCommand) (types.ID, error) {
	if _, err := s.jobs.Get(ctx, cmd.JobID); err != nil {
		return "", err
	}
	if _, err := s.contractors.Get(ctx, cmd.ContractorID); err != nil {
		return "", err
	}

	a := &Assignment{
		ID:           types.ID(uuid.NewString()),
		JobID:        cmd.JobID,
		ContractorID: cmd.ContractorID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Create(ctx, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

func (s *Service) ByContractorOnDate(ctx context.Context, contractorID types.ID, day time.Time) ([]Assignment, error) {
	return s.store.ByContractorOnDate(ctx, contractorID, day)
}

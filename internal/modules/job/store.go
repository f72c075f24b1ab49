// README: Job store backed by PostgreSQL.
package job

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fieldops/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, j *Job) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO jobs (
            id, description, job_type, location,
            lat, lng, scheduled_at, duration_hours, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		string(j.ID),
		j.Description,
		j.JobType,
		j.Location,
		j.Position.Lat, j.Position.Lng,
		j.ScheduledAt,
		j.DurationHours,
		j.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Job, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, description, job_type, location,
               lat, lng, scheduled_at, duration_hours, created_at
        FROM jobs
        WHERE id = $1`, string(id),
	)

	var j Job
	err := row.Scan(
		&j.ID, &j.Description, &j.JobType, &j.Location,
		&j.Position.Lat, &j.Position.Lng,
		&j.ScheduledAt, &j.DurationHours, &j.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

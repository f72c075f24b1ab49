// README: Assignment store backed by PostgreSQL; windows joined in from jobs.
package assignment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fieldops/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, a *Assignment) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO assignments (id, job_id, contractor_id, created_at)
        VALUES ($1, $2, $3, $4)`,
		string(a.ID),
		string(a.JobID),
		string(a.ContractorID),
		a.CreatedAt,
	)
	return err
}

// ByContractorOnDate returns the contractor's assignments whose jobs start
// within the UTC calendar day containing `day`.
func (s *Store) ByContractorOnDate(ctx context.Context, contractorID types.ID, day time.Time) ([]Assignment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	rows, err := s.db.Query(ctx, `
        SELECT a.id, a.job_id, a.contractor_id,
               j.scheduled_at, j.duration_hours, a.created_at
        FROM assignments a
        JOIN jobs j ON j.id = a.job_id
        WHERE a.contractor_id = $1
          AND j.scheduled_at >= $2
          AND j.scheduled_at < $3
        ORDER BY j.scheduled_at`,
		string(contractorID), dayStart, dayEnd,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.ContractorID,
			&a.StartAt, &a.DurationHours, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

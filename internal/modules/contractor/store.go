// README: Contractor store backed by PostgreSQL; rating aggregated from reviews.
package contractor

import (
	"context"
	"database/sql"
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

func (s *Store) Get(ctx context.Context, id types.ID) (*Contractor, error) {
	row := s.db.QueryRow(ctx, `
        SELECT c.id, c.name, c.active, c.lat, c.lng,
               c.work_start_min, c.work_end_min,
               AVG(r.rating)::float8, COUNT(r.id)
        FROM contractors c
        LEFT JOIN reviews r ON r.contractor_id = c.id
        WHERE c.id = $1
        GROUP BY c.id`, string(id),
	)

	var c Contractor
	var rating sql.NullFloat64
	var reviews int64
	err := row.Scan(
		&c.ID, &c.Name, &c.Active,
		&c.Position.Lat, &c.Position.Lng,
		&c.WorkStartMin, &c.WorkEndMin,
		&rating, &reviews,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		v := rating.Float64
		c.Rating = &v
	}
	c.ReviewCount = int(reviews)
	return &c, nil
}

// ActiveIDs returns the full candidate pool of active contractors.
func (s *Store) ActiveIDs(ctx context.Context) ([]types.ID, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id FROM contractors WHERE active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIDs(rows)
}

// DispatcherList returns the curated contractor pool a dispatcher maintains.
func (s *Store) DispatcherList(ctx context.Context, dispatcherID types.ID) ([]types.ID, error) {
	rows, err := s.db.Query(ctx, `
        SELECT contractor_id
        FROM dispatcher_contractors
        WHERE dispatcher_id = $1
        ORDER BY contractor_id`, string(dispatcherID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIDs(rows)
}

func (s *Store) AddReview(ctx context.Context, r *Review) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO reviews (id, contractor_id, rating, comment, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		string(r.ID),
		string(r.ContractorID),
		r.Rating,
		r.Comment,
		r.CreatedAt,
	)
	return err
}

func scanIDs(rows pgx.Rows) ([]types.ID, error) {
	var ids []types.ID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, types.ID(id))
	}
	return ids, rows.Err()
}

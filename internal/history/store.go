package history

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles plan_history persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert appends one record; created_at is assigned by the database.
func (s *Store) Insert(ctx context.Context, rec Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_history (capability, destination, duration_days, outcome)
		VALUES ($1, $2, $3, $4)
	`, rec.Capability, rec.Destination, rec.DurationDays, rec.Outcome)
	return err
}

// Recent returns the newest records, capped at limit.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, capability, destination, duration_days, outcome, created_at
		FROM plan_history
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Capability, &r.Destination, &r.DurationDays, &r.Outcome, &r.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// README: Best-effort audit of plan requests; never fails a request.
package history

import (
	"context"
	"log"
	"time"

	"yatra/internal/trip"
)

const recordTimeout = 3 * time.Second

// Service records plan outcomes and serves the recent-history listing.
// A nil Service (or nil store) disables auditing entirely.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Record writes one audit row. Failures are logged and swallowed; auditing
// must never affect the caller's response. A fresh context is used so a
// cancelled request still gets its outcome recorded.
func (s *Service) Record(cap trip.Capability, req trip.Request, outcome string) {
	if s == nil || s.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	err := s.store.Insert(ctx, Record{
		Capability:   string(cap),
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		Outcome:      outcome,
	})
	if err != nil {
		log.Printf("history: record failed: %v", err)
	}
}

// Recent lists the newest audit rows.
func (s *Service) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.store.Recent(ctx, limit)
}

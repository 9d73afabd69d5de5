package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"harvest/contexts/community/moderation-service/ports"
)

// Store is an in-memory moderation Repository seeded with a small pending
// queue so handler and service tests have rows to act on.
type Store struct {
	mu sync.RWMutex

	events     map[int64]ports.EventRow
	businesses map[int64]ports.BusinessRow
	failWrites bool
}

func NewStore() *Store {
	now := time.Now().UTC()
	return &Store{
		events: map[int64]ports.EventRow{
			1: {
				ID:           1,
				Title:        "Open Mic Night",
				Date:         now.Add(14 * 24 * time.Hour),
				Time:         "6pm-9pm",
				Location:     "Community Hall",
				Category:     "music",
				Description:  "Bring an instrument.",
				ContactEmail: "music@example.com",
				Status:       "pending",
				CreatedAt:    now.Add(-2 * time.Hour),
				UpdatedAt:    now.Add(-2 * time.Hour),
			},
		},
		businesses: map[int64]ports.BusinessRow{
			2: {
				ID:             2,
				Name:           "Hinterland Pottery",
				Category:       "arts",
				Description:    "Handmade ceramics.",
				SubmitterEmail: "pottery@example.com",
				Status:         "pending",
				CreatedAt:      now.Add(-4 * time.Hour),
				UpdatedAt:      now.Add(-4 * time.Hour),
			},
		},
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// FailWrites makes subsequent status updates report a store failure.
func (s *Store) FailWrites() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = true
}

func (s *Store) ListPendingEvents(_ context.Context) ([]ports.EventRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]ports.EventRow, 0, len(s.events))
	for _, row := range s.events {
		if row.Status == "pending" {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

func (s *Store) ListPendingBusinesses(_ context.Context) ([]ports.BusinessRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]ports.BusinessRow, 0, len(s.businesses))
	for _, row := range s.businesses {
		if row.Status == "pending" {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

func (s *Store) UpdateEventStatus(_ context.Context, eventID int64, status string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errors.New("store write failed")
	}
	row, ok := s.events[eventID]
	if !ok {
		return nil
	}
	row.Status = status
	row.UpdatedAt = now
	s.events[eventID] = row
	return nil
}

func (s *Store) UpdateBusinessStatus(_ context.Context, businessID int64, status string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errors.New("store write failed")
	}
	row, ok := s.businesses[businessID]
	if !ok {
		return nil
	}
	row.Status = status
	row.UpdatedAt = now
	s.businesses[businessID] = row
	return nil
}

// Event returns a seeded event row by id. Test helper.
func (s *Store) Event(id int64) (ports.EventRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.events[id]
	return row, ok
}

// Business returns a seeded business row by id. Test helper.
func (s *Store) Business(id int64) (ports.BusinessRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.businesses[id]
	return row, ok
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"harvest/contexts/community/directory-service/domain/entities"
	"harvest/contexts/community/directory-service/ports"
)

// Store is an in-memory Repository used by tests and local tooling.
type Store struct {
	mu sync.RWMutex

	events     map[int64]entities.EventSubmission
	businesses map[int64]entities.BusinessSubmission
	nextID     int64
}

func NewStore() *Store {
	return &Store{
		events:     map[int64]entities.EventSubmission{},
		businesses: map[int64]entities.BusinessSubmission{},
		nextID:     1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) CreateEvent(_ context.Context, event entities.EventSubmission) (entities.EventSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = s.nextID
	s.nextID++
	s.events[event.ID] = event
	return event, nil
}

func (s *Store) ListEventsByStatus(_ context.Context, status entities.SubmissionStatus, order ports.EventOrder) ([]entities.EventSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.EventSubmission, 0, len(s.events))
	for _, event := range s.events {
		if event.Status == status {
			items = append(items, event)
		}
	}
	switch order {
	case ports.EventOrderCreatedAtDesc:
		sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	default:
		sort.Slice(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	}
	return items, nil
}

func (s *Store) CreateBusiness(_ context.Context, business entities.BusinessSubmission) (entities.BusinessSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	business.ID = s.nextID
	s.nextID++
	s.businesses[business.ID] = business
	return business, nil
}

func (s *Store) ListBusinessesByStatus(_ context.Context, status entities.SubmissionStatus, order ports.BusinessOrder) ([]entities.BusinessSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.BusinessSubmission, 0, len(s.businesses))
	for _, business := range s.businesses {
		if business.Status == status {
			items = append(items, business)
		}
	}
	switch order {
	case ports.BusinessOrderCreatedAtDesc:
		sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	default:
		// Plain lexicographic byte order, matching ORDER BY name.
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	}
	return items, nil
}

// SetStatus mutates a stored row directly. Test helper for building
// approved fixtures without going through moderation.
func (s *Store) SetStatus(id int64, status entities.SubmissionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event, ok := s.events[id]; ok {
		event.Status = status
		s.events[id] = event
	}
	if business, ok := s.businesses[id]; ok {
		business.Status = status
		s.businesses[id] = business
	}
}

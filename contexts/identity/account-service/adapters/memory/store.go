package memory

import (
	"context"
	"sync"
	"time"

	"harvest/contexts/identity/account-service/ports"
)

// Store is an in-memory user Repository keyed by provider subject.
type Store struct {
	mu sync.Mutex

	nextID int64
	users  map[string]ports.User
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		users:  map[string]ports.User{},
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) UpsertUser(_ context.Context, input ports.UserUpsert) (ports.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[input.OpenID]
	if !exists {
		user = ports.User{
			ID:        s.nextID,
			OpenID:    input.OpenID,
			Role:      ports.RoleUser,
			CreatedAt: input.LastSignedIn,
		}
		s.nextID++
	}
	user.Name = input.Name
	user.Email = input.Email
	user.LoginMethod = input.LoginMethod
	user.LastSignedIn = input.LastSignedIn
	user.UpdatedAt = input.LastSignedIn
	if input.Role != "" {
		user.Role = input.Role
	}
	s.users[input.OpenID] = user
	return user, nil
}

func (s *Store) GetUserByOpenID(_ context.Context, openID string) (ports.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[openID]
	return user, ok, nil
}

// Seed inserts or replaces a user row. Test helper.
func (s *Store) Seed(user ports.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID >= s.nextID {
		s.nextID = user.ID + 1
	}
	s.users[user.OpenID] = user
}

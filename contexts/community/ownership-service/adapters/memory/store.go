package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"harvest/contexts/community/ownership-service/ports"
)

// Store is an in-memory ownership Repository seeded with claimable and
// non-claimable businesses mirroring the moderation lifecycle states.
type Store struct {
	mu sync.Mutex

	businesses map[int64]ports.BusinessProfile
}

func NewStore() *Store {
	now := time.Now().UTC()
	return &Store{
		businesses: map[int64]ports.BusinessProfile{
			7: {
				ID:             7,
				Name:           "Maleny Wholefoods",
				Category:       "food",
				Description:    "Organic grocer.",
				Status:         "approved",
				SubmitterEmail: "grocer@example.com",
				CreatedAt:      now.Add(-48 * time.Hour),
				UpdatedAt:      now.Add(-24 * time.Hour),
			},
			8: {
				ID:             8,
				Name:           "Creek Cabins",
				Category:       "accommodation",
				Description:    "Farm-stay cabins.",
				Status:         "pending",
				SubmitterEmail: "cabins@example.com",
				CreatedAt:      now.Add(-20 * time.Hour),
				UpdatedAt:      now.Add(-20 * time.Hour),
			},
			9: {
				ID:             9,
				Name:           "Witta Hall Services",
				Category:       "services",
				Description:    "Venue upkeep.",
				Status:         "approved",
				SubmitterEmail: "hall@example.com",
				CreatedAt:      now.Add(-72 * time.Hour),
				UpdatedAt:      now.Add(-72 * time.Hour),
			},
		},
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) GetBusiness(_ context.Context, businessID int64) (ports.BusinessProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.businesses[businessID]
	return profile, ok, nil
}

func (s *Store) GetBusinessByOwner(_ context.Context, userID int64) (ports.BusinessProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, profile := range s.businesses {
		if profile.OwnerUserID != nil && *profile.OwnerUserID == userID {
			return profile, true, nil
		}
	}
	return ports.BusinessProfile{}, false, nil
}

func (s *Store) ListUnclaimedApproved(_ context.Context) ([]ports.BusinessProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]ports.BusinessProfile, 0, len(s.businesses))
	for _, profile := range s.businesses {
		if profile.Status == "approved" && profile.OwnerUserID == nil {
			items = append(items, profile)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) ClaimBusiness(_ context.Context, businessID int64, userID int64, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.businesses[businessID]
	if !ok || profile.Status != "approved" || profile.OwnerUserID != nil {
		return false, nil
	}
	owner := userID
	profile.OwnerUserID = &owner
	profile.UpdatedAt = now
	s.businesses[businessID] = profile
	return true, nil
}

func (s *Store) UpdateProfile(_ context.Context, businessID int64, updates map[string]any, now time.Time) (ports.BusinessProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile := s.businesses[businessID]
	for column, value := range updates {
		text, _ := value.(string)
		switch column {
		case "name":
			profile.Name = text
		case "description":
			profile.Description = text
		case "address":
			profile.Address = text
		case "phone":
			profile.Phone = text
		case "email":
			profile.Email = text
		case "website":
			profile.Website = text
		case "facebook":
			profile.Facebook = text
		case "instagram":
			profile.Instagram = text
		case "image_url":
			profile.ImageURL = text
		}
	}
	profile.UpdatedAt = now
	s.businesses[businessID] = profile
	return profile, nil
}

// Seed inserts or replaces a business row. Test helper.
func (s *Store) Seed(profile ports.BusinessProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses[profile.ID] = profile
}

package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Actor is the authenticated caller resolved by the identity layer.
type Actor struct {
	UserID int64
}

type BusinessProfile struct {
	ID             int64
	OwnerUserID    *int64
	Name           string
	Category       string
	Description    string
	Address        string
	Phone          string
	Email          string
	Website        string
	Facebook       string
	Instagram      string
	ImageURL       string
	Status         string
	SubmittedBy    string
	SubmitterEmail string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfileUpdate is the fixed allow-list of owner-editable fields. A nil
// pointer leaves the column untouched; anything outside this struct cannot
// be expressed and is therefore dropped at the transport boundary.
type ProfileUpdate struct {
	Name        *string
	Description *string
	Address     *string
	Phone       *string
	Email       *string
	Website     *string
	Facebook    *string
	Instagram   *string
	ImageURL    *string
}

type Repository interface {
	GetBusiness(ctx context.Context, businessID int64) (BusinessProfile, bool, error)
	GetBusinessByOwner(ctx context.Context, userID int64) (BusinessProfile, bool, error)
	ListUnclaimedApproved(ctx context.Context) ([]BusinessProfile, error)
	// ClaimBusiness performs the conditional owner write: the row must be
	// approved and unowned. Reports whether a row was claimed.
	ClaimBusiness(ctx context.Context, businessID int64, userID int64, now time.Time) (bool, error)
	UpdateProfile(ctx context.Context, businessID int64, updates map[string]any, now time.Time) (BusinessProfile, error)
}

package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Actor is the authenticated caller as resolved by the identity layer.
type Actor struct {
	UserID int64
	Role   string
}

const RoleAdmin = "admin"

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type EventRow struct {
	ID           int64
	Title        string
	Date         time.Time
	Time         string
	Location     string
	Category     string
	Description  string
	ContactEmail string
	Status       string
	SubmittedBy  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type BusinessRow struct {
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

type Repository interface {
	ListPendingEvents(ctx context.Context) ([]EventRow, error)
	ListPendingBusinesses(ctx context.Context) ([]BusinessRow, error)
	UpdateEventStatus(ctx context.Context, eventID int64, status string, now time.Time) error
	UpdateBusinessStatus(ctx context.Context, businessID int64, status string, now time.Time) error
}

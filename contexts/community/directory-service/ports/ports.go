package ports

import (
	"context"
	"time"

	"harvest/contexts/community/directory-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type NewEvent struct {
	Title        string
	Date         time.Time
	Time         string
	Location     string
	Category     string
	Description  string
	ContactEmail string
	SubmittedBy  string
}

type NewBusiness struct {
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
	SubmittedBy    string
	SubmitterEmail string
}

type EventRepository interface {
	CreateEvent(ctx context.Context, event entities.EventSubmission) (entities.EventSubmission, error)
	ListEventsByStatus(ctx context.Context, status entities.SubmissionStatus, order EventOrder) ([]entities.EventSubmission, error)
}

type BusinessRepository interface {
	CreateBusiness(ctx context.Context, business entities.BusinessSubmission) (entities.BusinessSubmission, error)
	ListBusinessesByStatus(ctx context.Context, status entities.SubmissionStatus, order BusinessOrder) ([]entities.BusinessSubmission, error)
}

type EventOrder string

const (
	EventOrderDateAsc       EventOrder = "date_asc"
	EventOrderCreatedAtDesc EventOrder = "created_at_desc"
)

type BusinessOrder string

const (
	BusinessOrderNameAsc       BusinessOrder = "name_asc"
	BusinessOrderCreatedAtDesc BusinessOrder = "created_at_desc"
)

type Repository interface {
	EventRepository
	BusinessRepository
}

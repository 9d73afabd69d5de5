package entities

import "time"

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

type EventCategory string

const (
	EventCategoryMarket    EventCategory = "market"
	EventCategoryCommunity EventCategory = "community"
	EventCategoryArts      EventCategory = "arts"
	EventCategoryWorkshop  EventCategory = "workshop"
	EventCategoryMusic     EventCategory = "music"
)

func IsValidEventCategory(value string) bool {
	switch EventCategory(value) {
	case EventCategoryMarket, EventCategoryCommunity, EventCategoryArts,
		EventCategoryWorkshop, EventCategoryMusic:
		return true
	default:
		return false
	}
}

type BusinessCategory string

const (
	BusinessCategoryMarkets       BusinessCategory = "markets"
	BusinessCategoryArts          BusinessCategory = "arts"
	BusinessCategoryAccommodation BusinessCategory = "accommodation"
	BusinessCategoryServices      BusinessCategory = "services"
	BusinessCategoryFood          BusinessCategory = "food"
	BusinessCategoryWellness      BusinessCategory = "wellness"
	BusinessCategoryRetail        BusinessCategory = "retail"
	BusinessCategoryOther         BusinessCategory = "other"
)

func IsValidBusinessCategory(value string) bool {
	switch BusinessCategory(value) {
	case BusinessCategoryMarkets, BusinessCategoryArts, BusinessCategoryAccommodation,
		BusinessCategoryServices, BusinessCategoryFood, BusinessCategoryWellness,
		BusinessCategoryRetail, BusinessCategoryOther:
		return true
	default:
		return false
	}
}

// EventSubmission is a community event in the moderation lifecycle.
// Rows are always created pending; only an admin transition changes status.
type EventSubmission struct {
	ID           int64
	Title        string
	Date         time.Time
	Time         string
	Location     string
	Category     EventCategory
	Description  string
	ContactEmail string
	Status       SubmissionStatus
	SubmittedBy  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BusinessSubmission is a local enterprise listing. OwnerUserID is nil until
// an authenticated user claims the approved row, and set at most once.
type BusinessSubmission struct {
	ID             int64
	OwnerUserID    *int64
	Name           string
	Category       BusinessCategory
	Description    string
	Address        string
	Phone          string
	Email          string
	Website        string
	Facebook       string
	Instagram      string
	ImageURL       string
	Status         SubmissionStatus
	SubmittedBy    string
	SubmitterEmail string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

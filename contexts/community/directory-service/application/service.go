package application

import (
	"context"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"harvest/contexts/community/directory-service/domain/entities"
	domainerrors "harvest/contexts/community/directory-service/domain/errors"
	"harvest/contexts/community/directory-service/ports"
)

// Service owns public submission intake and the approved directory reads.
// A nil Repo means no backing store is configured: reads degrade to empty
// results, writes surface ErrStoreUnavailable so caller data is never
// silently dropped.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) SubmitEvent(ctx context.Context, input ports.NewEvent) (entities.EventSubmission, error) {
	logger := resolveLogger(s.Logger)

	input.Title = strings.TrimSpace(input.Title)
	input.Time = strings.TrimSpace(input.Time)
	input.Location = strings.TrimSpace(input.Location)
	input.Category = strings.TrimSpace(strings.ToLower(input.Category))
	input.Description = strings.TrimSpace(input.Description)
	input.ContactEmail = strings.TrimSpace(input.ContactEmail)
	input.SubmittedBy = strings.TrimSpace(input.SubmittedBy)

	if input.Title == "" {
		return entities.EventSubmission{}, domainerrors.NewFieldError("title", "is required")
	}
	if input.Date.IsZero() {
		return entities.EventSubmission{}, domainerrors.NewFieldError("date", "is required")
	}
	if input.Time == "" {
		return entities.EventSubmission{}, domainerrors.NewFieldError("time", "is required")
	}
	if input.Location == "" {
		return entities.EventSubmission{}, domainerrors.NewFieldError("location", "is required")
	}
	if !entities.IsValidEventCategory(input.Category) {
		return entities.EventSubmission{}, domainerrors.NewFieldError("category", "must be one of market, community, arts, workshop, music")
	}
	if input.Description == "" {
		return entities.EventSubmission{}, domainerrors.NewFieldError("description", "is required")
	}
	if !isValidEmail(input.ContactEmail) {
		return entities.EventSubmission{}, domainerrors.NewFieldError("contact_email", "must be a valid email address")
	}

	if s.Repo == nil {
		return entities.EventSubmission{}, domainerrors.ErrStoreUnavailable
	}

	now := s.now()
	created, err := s.Repo.CreateEvent(ctx, entities.EventSubmission{
		Title:        input.Title,
		Date:         input.Date.UTC(),
		Time:         input.Time,
		Location:     input.Location,
		Category:     entities.EventCategory(input.Category),
		Description:  input.Description,
		ContactEmail: input.ContactEmail,
		Status:       entities.StatusPending,
		SubmittedBy:  input.SubmittedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		logger.Error("event submission write failed",
			"event", "event_submission_write_failed",
			"module", "community/directory-service",
			"layer", "application",
			"error", err.Error(),
		)
		return entities.EventSubmission{}, err
	}

	logger.Info("event submitted",
		"event", "event_submitted",
		"module", "community/directory-service",
		"layer", "application",
		"event_id", created.ID,
		"category", created.Category,
	)
	return created, nil
}

func (s Service) SubmitBusiness(ctx context.Context, input ports.NewBusiness) (entities.BusinessSubmission, error) {
	logger := resolveLogger(s.Logger)

	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(strings.ToLower(input.Category))
	input.Description = strings.TrimSpace(input.Description)
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Website = strings.TrimSpace(input.Website)
	input.Facebook = strings.TrimSpace(input.Facebook)
	input.Instagram = strings.TrimSpace(input.Instagram)
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	input.SubmittedBy = strings.TrimSpace(input.SubmittedBy)
	input.SubmitterEmail = strings.TrimSpace(input.SubmitterEmail)

	if input.Name == "" {
		return entities.BusinessSubmission{}, domainerrors.NewFieldError("name", "is required")
	}
	if !entities.IsValidBusinessCategory(input.Category) {
		return entities.BusinessSubmission{}, domainerrors.NewFieldError("category", "is not a recognized business category")
	}
	if input.Description == "" {
		return entities.BusinessSubmission{}, domainerrors.NewFieldError("description", "is required")
	}
	if !isValidEmail(input.SubmitterEmail) {
		return entities.BusinessSubmission{}, domainerrors.NewFieldError("submitter_email", "must be a valid email address")
	}
	if input.Email != "" && !isValidEmail(input.Email) {
		return entities.BusinessSubmission{}, domainerrors.NewFieldError("email", "must be a valid email address")
	}
	if input.Website != "" && !isValidURL(input.Website) {
		return entities.BusinessSubmission{}, domainerrors.NewFieldError("website", "must be a well-formed URL")
	}
	if input.ImageURL != "" && !isValidURL(input.ImageURL) {
		return entities.BusinessSubmission{}, domainerrors.NewFieldError("image_url", "must be a well-formed URL")
	}

	if s.Repo == nil {
		return entities.BusinessSubmission{}, domainerrors.ErrStoreUnavailable
	}

	now := s.now()
	created, err := s.Repo.CreateBusiness(ctx, entities.BusinessSubmission{
		Name:           input.Name,
		Category:       entities.BusinessCategory(input.Category),
		Description:    input.Description,
		Address:        input.Address,
		Phone:          input.Phone,
		Email:          input.Email,
		Website:        input.Website,
		Facebook:       input.Facebook,
		Instagram:      input.Instagram,
		ImageURL:       input.ImageURL,
		Status:         entities.StatusPending,
		SubmittedBy:    input.SubmittedBy,
		SubmitterEmail: input.SubmitterEmail,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		logger.Error("business submission write failed",
			"event", "business_submission_write_failed",
			"module", "community/directory-service",
			"layer", "application",
			"error", err.Error(),
		)
		return entities.BusinessSubmission{}, err
	}

	logger.Info("business submitted",
		"event", "business_submitted",
		"module", "community/directory-service",
		"layer", "application",
		"business_id", created.ID,
		"category", created.Category,
	)
	return created, nil
}

// ListApprovedEvents returns the public what's-on feed, date ascending.
func (s Service) ListApprovedEvents(ctx context.Context) ([]entities.EventSubmission, error) {
	if s.Repo == nil {
		return []entities.EventSubmission{}, nil
	}
	items, err := s.Repo.ListEventsByStatus(ctx, entities.StatusApproved, ports.EventOrderDateAsc)
	if err != nil {
		resolveLogger(s.Logger).Error("approved events read failed",
			"event", "approved_events_read_failed",
			"module", "community/directory-service",
			"layer", "application",
			"error", err.Error(),
		)
		return []entities.EventSubmission{}, nil
	}
	return items, nil
}

// ListApprovedBusinesses returns the public enterprise directory, name ascending.
func (s Service) ListApprovedBusinesses(ctx context.Context) ([]entities.BusinessSubmission, error) {
	if s.Repo == nil {
		return []entities.BusinessSubmission{}, nil
	}
	items, err := s.Repo.ListBusinessesByStatus(ctx, entities.StatusApproved, ports.BusinessOrderNameAsc)
	if err != nil {
		resolveLogger(s.Logger).Error("approved businesses read failed",
			"event", "approved_businesses_read_failed",
			"module", "community/directory-service",
			"layer", "application",
			"error", err.Error(),
		)
		return []entities.BusinessSubmission{}, nil
	}
	return items, nil
}

// ListPendingEvents is the moderation queue read, newest first. Role gating
// belongs to the moderation service, the only caller.
func (s Service) ListPendingEvents(ctx context.Context) ([]entities.EventSubmission, error) {
	if s.Repo == nil {
		return []entities.EventSubmission{}, nil
	}
	items, err := s.Repo.ListEventsByStatus(ctx, entities.StatusPending, ports.EventOrderCreatedAtDesc)
	if err != nil {
		return []entities.EventSubmission{}, nil
	}
	return items, nil
}

func (s Service) ListPendingBusinesses(ctx context.Context) ([]entities.BusinessSubmission, error) {
	if s.Repo == nil {
		return []entities.BusinessSubmission{}, nil
	}
	items, err := s.Repo.ListBusinessesByStatus(ctx, entities.StatusPending, ports.BusinessOrderCreatedAtDesc)
	if err != nil {
		return []entities.BusinessSubmission{}, nil
	}
	return items, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func isValidEmail(value string) bool {
	if value == "" {
		return false
	}
	parsed, err := mail.ParseAddress(value)
	return err == nil && parsed.Address == value
}

func isValidURL(value string) bool {
	parsed, err := url.Parse(value)
	return err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

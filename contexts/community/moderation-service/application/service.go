package application

import (
	"context"
	"log/slog"
	"time"

	domainerrors "harvest/contexts/community/moderation-service/domain/errors"
	"harvest/contexts/community/moderation-service/ports"
)

const (
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Service gates the moderation queue behind the admin role. The role check
// always runs before any store access so an unauthorized caller learns
// nothing about store state.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) PendingEvents(ctx context.Context, actor ports.Actor) ([]ports.EventRow, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized
	}
	if s.Repo == nil {
		return []ports.EventRow{}, nil
	}
	rows, err := s.Repo.ListPendingEvents(ctx)
	if err != nil {
		resolveLogger(s.Logger).Error("pending events read failed",
			"event", "pending_events_read_failed",
			"module", "community/moderation-service",
			"layer", "application",
			"error", err.Error(),
		)
		return []ports.EventRow{}, nil
	}
	return rows, nil
}

func (s Service) PendingBusinesses(ctx context.Context, actor ports.Actor) ([]ports.BusinessRow, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized
	}
	if s.Repo == nil {
		return []ports.BusinessRow{}, nil
	}
	rows, err := s.Repo.ListPendingBusinesses(ctx)
	if err != nil {
		resolveLogger(s.Logger).Error("pending businesses read failed",
			"event", "pending_businesses_read_failed",
			"module", "community/moderation-service",
			"layer", "application",
			"error", err.Error(),
		)
		return []ports.BusinessRow{}, nil
	}
	return rows, nil
}

// SetEventStatus transitions an event; the boolean reports store success.
// Prior status is intentionally not checked, matching the admin dashboard's
// ability to reverse a decision.
func (s Service) SetEventStatus(ctx context.Context, eventID int64, status string, actor ports.Actor) (bool, error) {
	if err := s.checkTransition(status, actor); err != nil {
		return false, err
	}
	if s.Repo == nil {
		return false, nil
	}
	if err := s.Repo.UpdateEventStatus(ctx, eventID, status, s.now()); err != nil {
		resolveLogger(s.Logger).Error("event status update failed",
			"event", "event_status_update_failed",
			"module", "community/moderation-service",
			"layer", "application",
			"event_id", eventID,
			"status", status,
			"error", err.Error(),
		)
		return false, nil
	}
	resolveLogger(s.Logger).Info("event status updated",
		"event", "event_status_updated",
		"module", "community/moderation-service",
		"layer", "application",
		"event_id", eventID,
		"status", status,
		"moderator_id", actor.UserID,
	)
	return true, nil
}

func (s Service) SetBusinessStatus(ctx context.Context, businessID int64, status string, actor ports.Actor) (bool, error) {
	if err := s.checkTransition(status, actor); err != nil {
		return false, err
	}
	if s.Repo == nil {
		return false, nil
	}
	if err := s.Repo.UpdateBusinessStatus(ctx, businessID, status, s.now()); err != nil {
		resolveLogger(s.Logger).Error("business status update failed",
			"event", "business_status_update_failed",
			"module", "community/moderation-service",
			"layer", "application",
			"business_id", businessID,
			"status", status,
			"error", err.Error(),
		)
		return false, nil
	}
	resolveLogger(s.Logger).Info("business status updated",
		"event", "business_status_updated",
		"module", "community/moderation-service",
		"layer", "application",
		"business_id", businessID,
		"status", status,
		"moderator_id", actor.UserID,
	)
	return true, nil
}

func (s Service) checkTransition(status string, actor ports.Actor) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrUnauthorized
	}
	if status != StatusApproved && status != StatusRejected {
		return domainerrors.ErrInvalidStatus
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

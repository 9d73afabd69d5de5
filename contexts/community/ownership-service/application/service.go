package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	domainerrors "harvest/contexts/community/ownership-service/domain/errors"
	"harvest/contexts/community/ownership-service/ports"
)

// Service implements the one-business-per-owner claim protocol and the
// owner-gated profile editor.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) MyBusiness(ctx context.Context, actor ports.Actor) (*ports.BusinessProfile, error) {
	if s.Repo == nil {
		return nil, nil
	}
	profile, found, err := s.Repo.GetBusinessByOwner(ctx, actor.UserID)
	if err != nil {
		resolveLogger(s.Logger).Error("owned business read failed",
			"event", "owned_business_read_failed",
			"module", "community/ownership-service",
			"layer", "application",
			"user_id", actor.UserID,
			"error", err.Error(),
		)
		return nil, nil
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

func (s Service) ListUnclaimed(ctx context.Context, actor ports.Actor) ([]ports.BusinessProfile, error) {
	if s.Repo == nil {
		return []ports.BusinessProfile{}, nil
	}
	items, err := s.Repo.ListUnclaimedApproved(ctx)
	if err != nil {
		resolveLogger(s.Logger).Error("unclaimed businesses read failed",
			"event", "unclaimed_businesses_read_failed",
			"module", "community/ownership-service",
			"layer", "application",
			"user_id", actor.UserID,
			"error", err.Error(),
		)
		return []ports.BusinessProfile{}, nil
	}
	return items, nil
}

// Claim associates the caller with an approved, unowned business. The
// already-owns pre-check is a plain read; the conditional write in the
// repository is what makes two different users racing for the same row safe.
func (s Service) Claim(ctx context.Context, businessID int64, actor ports.Actor) (ports.BusinessProfile, error) {
	logger := resolveLogger(s.Logger)
	if s.Repo == nil {
		return ports.BusinessProfile{}, domainerrors.ErrStoreUnavailable
	}

	if _, alreadyOwns, err := s.Repo.GetBusinessByOwner(ctx, actor.UserID); err != nil {
		return ports.BusinessProfile{}, err
	} else if alreadyOwns {
		return ports.BusinessProfile{}, domainerrors.ErrAlreadyOwnsBusiness
	}

	claimed, err := s.Repo.ClaimBusiness(ctx, businessID, actor.UserID, s.now())
	if err != nil {
		logger.Error("claim write failed",
			"event", "business_claim_write_failed",
			"module", "community/ownership-service",
			"layer", "application",
			"business_id", businessID,
			"user_id", actor.UserID,
			"error", err.Error(),
		)
		return ports.BusinessProfile{}, err
	}
	if !claimed {
		logger.Warn("claim conflict",
			"event", "business_claim_conflict",
			"module", "community/ownership-service",
			"layer", "application",
			"business_id", businessID,
			"user_id", actor.UserID,
		)
		return ports.BusinessProfile{}, domainerrors.ErrClaimFailed
	}

	profile, found, err := s.Repo.GetBusiness(ctx, businessID)
	if err != nil {
		return ports.BusinessProfile{}, err
	}
	if !found {
		return ports.BusinessProfile{}, domainerrors.ErrBusinessNotFound
	}

	logger.Info("business claimed",
		"event", "business_claimed",
		"module", "community/ownership-service",
		"layer", "application",
		"business_id", businessID,
		"user_id", actor.UserID,
	)
	return profile, nil
}

// UpdateProfile mutates only the allow-listed fields and re-verifies
// ownership on every call.
func (s Service) UpdateProfile(ctx context.Context, businessID int64, actor ports.Actor, update ports.ProfileUpdate) (ports.BusinessProfile, error) {
	if s.Repo == nil {
		return ports.BusinessProfile{}, domainerrors.ErrStoreUnavailable
	}

	current, found, err := s.Repo.GetBusiness(ctx, businessID)
	if err != nil {
		return ports.BusinessProfile{}, err
	}
	if !found || current.OwnerUserID == nil || *current.OwnerUserID != actor.UserID {
		return ports.BusinessProfile{}, domainerrors.ErrUnauthorized
	}

	updates, err := buildUpdates(update)
	if err != nil {
		return ports.BusinessProfile{}, err
	}

	profile, err := s.Repo.UpdateProfile(ctx, businessID, updates, s.now())
	if err != nil {
		resolveLogger(s.Logger).Error("profile update failed",
			"event", "business_profile_update_failed",
			"module", "community/ownership-service",
			"layer", "application",
			"business_id", businessID,
			"user_id", actor.UserID,
			"error", err.Error(),
		)
		return ports.BusinessProfile{}, err
	}

	resolveLogger(s.Logger).Info("business profile updated",
		"event", "business_profile_updated",
		"module", "community/ownership-service",
		"layer", "application",
		"business_id", businessID,
		"user_id", actor.UserID,
		"fields", len(updates),
	)
	return profile, nil
}

func buildUpdates(update ports.ProfileUpdate) (map[string]any, error) {
	updates := map[string]any{}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domainerrors.ErrInvalidProfile)
		}
		updates["name"] = name
	}
	if update.Description != nil {
		description := strings.TrimSpace(*update.Description)
		if description == "" {
			return nil, fmt.Errorf("%w: description must not be empty", domainerrors.ErrInvalidProfile)
		}
		updates["description"] = description
	}
	if update.Address != nil {
		updates["address"] = strings.TrimSpace(*update.Address)
	}
	if update.Phone != nil {
		updates["phone"] = strings.TrimSpace(*update.Phone)
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email != "" && !isValidEmail(email) {
			return nil, fmt.Errorf("%w: email must be a valid address", domainerrors.ErrInvalidProfile)
		}
		updates["email"] = email
	}
	if update.Website != nil {
		website := strings.TrimSpace(*update.Website)
		if website != "" && !isValidURL(website) {
			return nil, fmt.Errorf("%w: website must be a well-formed URL", domainerrors.ErrInvalidProfile)
		}
		updates["website"] = website
	}
	if update.Facebook != nil {
		updates["facebook"] = strings.TrimSpace(*update.Facebook)
	}
	if update.Instagram != nil {
		updates["instagram"] = strings.TrimSpace(*update.Instagram)
	}
	if update.ImageURL != nil {
		imageURL := strings.TrimSpace(*update.ImageURL)
		if imageURL != "" && !isValidURL(imageURL) {
			return nil, fmt.Errorf("%w: image_url must be a well-formed URL", domainerrors.ErrInvalidProfile)
		}
		updates["image_url"] = imageURL
	}

	return updates, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func isValidEmail(value string) bool {
	parsed, err := mail.ParseAddress(value)
	return err == nil && parsed.Address == value
}

func isValidURL(value string) bool {
	parsed, err := url.Parse(value)
	return err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

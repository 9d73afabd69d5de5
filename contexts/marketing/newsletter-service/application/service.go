package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	domainerrors "harvest/contexts/marketing/newsletter-service/domain/errors"
	"harvest/contexts/marketing/newsletter-service/ports"
)

const (
	defaultSource  = "The Harvest Website Newsletter"
	successMessage = "Successfully subscribed to the newsletter!"
)

var validInterests = map[string]struct{}{
	"events":        {},
	"workshops":     {},
	"markets":       {},
	"venue-hire":    {},
	"garden-centre": {},
	"food-kitchen":  {},
}

type SubscribeInput struct {
	Email     string
	FirstName string
	LastName  string
	Source    string
	Interests []string
}

type SubscribeResult struct {
	Success bool
	Message string
}

// Service bridges newsletter signups to the external CRM.
type Service struct {
	Client ports.ContactClient
	Logger *slog.Logger
}

// Subscribe validates the signup, builds interest tags and upserts the
// contact. The contact id stays internal; callers only see success and a
// message.
func (s Service) Subscribe(ctx context.Context, input SubscribeInput) (SubscribeResult, error) {
	email := strings.TrimSpace(input.Email)
	if !isValidEmail(email) {
		return SubscribeResult{}, fmt.Errorf("%w: email must be a valid address", domainerrors.ErrValidation)
	}
	for _, interest := range input.Interests {
		if _, ok := validInterests[interest]; !ok {
			return SubscribeResult{}, fmt.Errorf("%w: unknown interest %q", domainerrors.ErrValidation, interest)
		}
	}
	if s.Client == nil {
		return SubscribeResult{}, domainerrors.ErrNotConfigured
	}

	tags := []string{"newsletter", "website-signup"}
	for _, interest := range input.Interests {
		tags = append(tags, "interest-"+interest)
	}
	source := strings.TrimSpace(input.Source)
	if source == "" {
		source = defaultSource
	}

	result, err := s.Client.UpsertContact(ctx, ports.ContactInput{
		Email:     email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Source:    source,
		Tags:      tags,
	})
	if err != nil {
		resolveLogger(s.Logger).Error("newsletter subscription failed",
			"event", "newsletter_subscribe_failed",
			"module", "marketing/newsletter-service",
			"layer", "application",
			"error", err.Error(),
		)
		return SubscribeResult{}, err
	}

	resolveLogger(s.Logger).Info("newsletter subscription stored",
		"event", "newsletter_subscribed",
		"module", "marketing/newsletter-service",
		"layer", "application",
		"contact_id", result.ContactID,
		"tags", len(tags),
	)
	return SubscribeResult{Success: true, Message: successMessage}, nil
}

func isValidEmail(value string) bool {
	parsed, err := mail.ParseAddress(value)
	return err == nil && parsed.Address == value
}

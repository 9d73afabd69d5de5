package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"harvest/contexts/identity/account-service/ports"
)

// Service resolves bearer tokens into stored users. Resolution never fails a
// request: every failure path degrades to an anonymous caller.
type Service struct {
	Verifier    ports.TokenVerifier
	Repo        ports.Repository
	Clock       ports.Clock
	Logger      *slog.Logger
	OwnerOpenID string
}

// Resolve verifies the Authorization header, records the sign-in and returns
// the stored user. A missing or unverifiable token resolves to (nil, nil).
func (s Service) Resolve(ctx context.Context, authorizationHeader string) (*ports.User, error) {
	token := bearerToken(authorizationHeader)
	if token == "" {
		return nil, nil
	}
	if s.Verifier == nil {
		return nil, nil
	}

	identity, err := s.Verifier.Verify(ctx, token)
	if err != nil {
		resolveLogger(s.Logger).Warn("token verification failed",
			"event", "token_verification_failed",
			"module", "identity/account-service",
			"layer", "application",
			"error", err.Error(),
		)
		return nil, nil
	}
	if identity.SubjectID == "" {
		return nil, nil
	}

	if s.Repo == nil {
		resolveLogger(s.Logger).Warn("user upsert skipped",
			"event", "user_upsert_skipped",
			"module", "identity/account-service",
			"layer", "application",
			"reason", "store unavailable",
		)
		return nil, nil
	}

	input := ports.UserUpsert{
		OpenID:       identity.SubjectID,
		Name:         identity.Name,
		Email:        identity.Email,
		LoginMethod:  identity.LoginMethod,
		LastSignedIn: s.now(),
	}
	if s.OwnerOpenID != "" && identity.SubjectID == s.OwnerOpenID {
		input.Role = ports.RoleAdmin
	}

	user, err := s.Repo.UpsertUser(ctx, input)
	if err != nil {
		resolveLogger(s.Logger).Error("user upsert failed",
			"event", "user_upsert_failed",
			"module", "identity/account-service",
			"layer", "application",
			"open_id", identity.SubjectID,
			"error", err.Error(),
		)
		return nil, nil
	}

	resolveLogger(s.Logger).Info("user resolved",
		"event", "user_resolved",
		"module", "identity/account-service",
		"layer", "application",
		"user_id", user.ID,
		"role", user.Role,
	)
	return &user, nil
}

// Logout is stateless: the hosted provider owns the session, so the server
// only acknowledges the call.
func (s Service) Logout(_ context.Context, user *ports.User) bool {
	if user != nil {
		resolveLogger(s.Logger).Info("user logged out",
			"event", "user_logged_out",
			"module", "identity/account-service",
			"layer", "application",
			"user_id", user.ID,
		)
	}
	return true
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

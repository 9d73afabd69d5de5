package provider

import (
	"context"
	"crypto"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "harvest/contexts/identity/account-service/domain/errors"
	"harvest/contexts/identity/account-service/ports"
)

const userInfoPath = "/auth/v1/user"

// Verifier validates access tokens issued by the hosted auth provider.
// When a signing key is configured it verifies tokens locally; otherwise it
// falls back to the provider's user endpoint.
type Verifier struct {
	providerURL string
	publicKey   crypto.PublicKey
	httpClient  *http.Client
	logger      *slog.Logger
}

func NewVerifier(providerURL string, publicKeyPEM string, logger *slog.Logger) (*Verifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	verifier := &Verifier{
		providerURL: strings.TrimRight(strings.TrimSpace(providerURL), "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}
	if pem := strings.TrimSpace(publicKeyPEM); pem != "" {
		key, err := parsePublicKey(pem)
		if err != nil {
			return nil, fmt.Errorf("parse auth signing key: %w", err)
		}
		verifier.publicKey = key
	}
	return verifier, nil
}

func parsePublicKey(pemData string) (crypto.PublicKey, error) {
	if key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemData)); err == nil {
		return key, nil
	}
	return jwt.ParseECPublicKeyFromPEM([]byte(pemData))
}

func (v *Verifier) Verify(ctx context.Context, token string) (ports.Identity, error) {
	if v.publicKey != nil {
		return v.verifyLocally(token)
	}
	if v.providerURL != "" {
		return v.fetchUser(ctx, token)
	}
	return ports.Identity{}, domainerrors.ErrVerifierNotConfigured
}

type tokenClaims struct {
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	AppMetadata  appMetadata    `json:"app_metadata"`
	jwt.RegisteredClaims
}

type appMetadata struct {
	Provider  string   `json:"provider"`
	Providers []string `json:"providers"`
}

func (v *Verifier) verifyLocally(token string) (ports.Identity, error) {
	claims := tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.publicKey, nil
	}, jwt.WithValidMethods([]string{"RS256", "ES256"}))
	if err != nil {
		return ports.Identity{}, fmt.Errorf("%w: %s", domainerrors.ErrTokenInvalid, err.Error())
	}
	if !parsed.Valid || claims.Subject == "" {
		return ports.Identity{}, domainerrors.ErrTokenInvalid
	}
	return ports.Identity{
		SubjectID:   claims.Subject,
		Name:        displayName(claims.UserMetadata),
		Email:       claims.Email,
		LoginMethod: loginMethod(claims.AppMetadata),
	}, nil
}

type userPayload struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	AppMetadata  appMetadata    `json:"app_metadata"`
}

func (v *Verifier) fetchUser(ctx context.Context, token string) (ports.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.providerURL+userInfoPath, nil)
	if err != nil {
		return ports.Identity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("auth provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.Identity{}, err
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ports.Identity{}, domainerrors.ErrTokenInvalid
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ports.Identity{}, fmt.Errorf("auth provider returned status %d", resp.StatusCode)
	}

	payload := userPayload{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ports.Identity{}, fmt.Errorf("decode auth provider response: %w", err)
	}
	if payload.ID == "" {
		return ports.Identity{}, domainerrors.ErrTokenInvalid
	}
	return ports.Identity{
		SubjectID:   payload.ID,
		Name:        displayName(payload.UserMetadata),
		Email:       payload.Email,
		LoginMethod: loginMethod(payload.AppMetadata),
	}, nil
}

// displayName prefers the full_name metadata entry over name.
func displayName(metadata map[string]any) string {
	for _, key := range []string{"full_name", "name"} {
		if value, ok := metadata[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

func loginMethod(metadata appMetadata) string {
	if metadata.Provider != "" {
		return metadata.Provider
	}
	if len(metadata.Providers) > 0 {
		return metadata.Providers[0]
	}
	return ""
}

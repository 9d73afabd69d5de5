package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainerrors "harvest/contexts/marketing/newsletter-service/domain/errors"
	"harvest/contexts/marketing/newsletter-service/ports"
)

const (
	defaultAPIBase = "https://services.leadconnectorhq.com"
	apiVersion     = "2021-07-28"
	upsertPath     = "/contacts/upsert"
)

type Config struct {
	APIBase    string
	APIKey     string
	LocationID string
}

// Client talks to the GoHighLevel contacts API.
type Client struct {
	baseURL    string
	apiKey     string
	locationID string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	if base == "" {
		base = defaultAPIBase
	}
	return &Client{
		baseURL:    base,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		locationID: strings.TrimSpace(cfg.LocationID),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type upsertRequest struct {
	Email      string   `json:"email"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	LocationID string   `json:"locationId"`
	Source     string   `json:"source"`
	Tags       []string `json:"tags"`
}

type upsertResponse struct {
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// UpsertContact creates or refreshes the contact. Missing credentials fail
// before any network call.
func (c *Client) UpsertContact(ctx context.Context, input ports.ContactInput) (ports.ContactResult, error) {
	if c.apiKey == "" || c.locationID == "" {
		return ports.ContactResult{}, domainerrors.ErrNotConfigured
	}

	payload, err := json.Marshal(upsertRequest{
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Phone:      input.Phone,
		LocationID: c.locationID,
		Source:     input.Source,
		Tags:       input.Tags,
	})
	if err != nil {
		return ports.ContactResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+upsertPath, bytes.NewReader(payload))
	if err != nil {
		return ports.ContactResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.ContactResult{}, fmt.Errorf("%w: %s", domainerrors.ErrConnection, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.ContactResult{}, fmt.Errorf("%w: %s", domainerrors.ErrConnection, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		providerMessage := decodeErrorMessage(body)
		c.logger.Warn("crm upsert rejected",
			"event", "crm_upsert_rejected",
			"module", "marketing/newsletter-service",
			"layer", "adapter",
			"status", resp.StatusCode,
			"provider_message", providerMessage,
		)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return ports.ContactResult{}, domainerrors.ErrAuthFailed
		case http.StatusUnprocessableEntity:
			return ports.ContactResult{}, &domainerrors.DuplicateContactError{Message: providerMessage}
		default:
			return ports.ContactResult{}, &domainerrors.ProviderError{StatusCode: resp.StatusCode, Message: providerMessage}
		}
	}

	decoded := upsertResponse{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ports.ContactResult{}, fmt.Errorf("decode crm response: %w", err)
	}
	return ports.ContactResult{ContactID: decoded.Contact.ID}, nil
}

func decodeErrorMessage(body []byte) string {
	decoded := errorResponse{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return ""
	}
	if decoded.Message != "" {
		return decoded.Message
	}
	return decoded.Error
}

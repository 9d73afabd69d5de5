package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "harvest/contexts/marketing/newsletter-service/domain/errors"
	"harvest/contexts/marketing/newsletter-service/ports"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIBase:    baseURL,
		APIKey:     "test-key",
		LocationID: "loc-1",
	}, nil)
}

func TestUpsertContactSendsProviderContract(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contacts/upsert", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "2021-07-28", r.Header.Get("Version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"contact":{"id":"ghl-123","email":"person@example.com"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.UpsertContact(context.Background(), ports.ContactInput{
		Email:     "person@example.com",
		FirstName: "Pat",
		Source:    "The Harvest Website Newsletter",
		Tags:      []string{"newsletter", "website-signup"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ghl-123", result.ContactID)

	assert.Equal(t, "person@example.com", captured["email"])
	assert.Equal(t, "Pat", captured["firstName"])
	assert.Equal(t, "loc-1", captured["locationId"])
	assert.Equal(t, "The Harvest Website Newsletter", captured["source"])
	assert.NotContains(t, captured, "lastName")
}

func TestUpsertContactWithoutCredentials(t *testing.T) {
	client := NewClient(Config{}, nil)

	_, err := client.UpsertContact(context.Background(), ports.ContactInput{Email: "person@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrNotConfigured)
}

func TestUpsertContactMapsAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid JWT"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.UpsertContact(context.Background(), ports.ContactInput{Email: "person@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrAuthFailed)
}

func TestUpsertContactMapsDuplicate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"This contact already exists"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.UpsertContact(context.Background(), ports.ContactInput{Email: "person@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateContact)
	assert.Equal(t, "This contact already exists", err.Error())
}

func TestUpsertContactMapsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream exploded"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.UpsertContact(context.Background(), ports.ContactInput{Email: "person@example.com"})

	providerErr := &domainerrors.ProviderError{}
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusBadGateway, providerErr.StatusCode)
	assert.Equal(t, "upstream exploded", providerErr.Message)
}

func TestUpsertContactMapsConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.UpsertContact(context.Background(), ports.ContactInput{Email: "person@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrConnection)
}

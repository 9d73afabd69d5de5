package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"harvest/contexts/community/directory-service/domain/entities"
)

func TestRegistryRequiresToken(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/registry", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Invalid registry token." {
		t.Fatalf("unexpected message: %+v", resp)
	}
}

func TestRegistryRejectsWrongToken(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/registry", nil)
	req.Header.Set("X-Registry-Token", "wrong-token")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRegistryAcceptsBothTokenHeaders(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/registry", nil)
	req.Header.Set("Authorization", "Bearer registry-secret")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("bearer: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/registry", nil)
	req.Header.Set("X-Registry-Token", "registry-secret")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("header: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRegistryOpenWhenTokenUnset(t *testing.T) {
	server := newTestServer()
	server.registry.Token = ""

	req := httptest.NewRequest(http.MethodGet, "/api/registry", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRegistryFeedShape(t *testing.T) {
	server := newTestServer()

	body := []byte(`{
		"title": "Makers Market",
		"date": "2026-03-14",
		"time": "10:00 AM",
		"location": "Witta Hall",
		"category": "market",
		"description": "Monthly produce market.",
		"contactEmail": "organiser@example.com"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	server.directory.Store.SetStatus(1, entities.StatusApproved)

	req = httptest.NewRequest(http.MethodGet, "/api/registry", nil)
	req.Header.Set("X-Registry-Token", "registry-secret")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("feed: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var feed registryFeedResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &feed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("expected one item, got %+v", feed.Items)
	}
	item := feed.Items[0]
	if item.ID != "event-1" || item.Type != "event" || item.Status != "published" {
		t.Fatalf("unexpected item identity: %+v", item)
	}
	if item.CanonicalURL != "https://theharvest.example/whats-on" {
		t.Fatalf("canonical url must use the configured site base, got %q", item.CanonicalURL)
	}
	if len(item.Tags) != 1 || item.Tags[0] != "market" {
		t.Fatalf("category must surface as a tag, got %v", item.Tags)
	}
}

func TestRegistryBaseURLFromForwardedProto(t *testing.T) {
	server := newTestServer()
	server.registry.PublicSiteURL = ""

	body := []byte(`{
		"title": "Makers Market",
		"date": "2026-03-14",
		"time": "10:00 AM",
		"location": "Witta Hall",
		"category": "market",
		"description": "Monthly produce market.",
		"contactEmail": "organiser@example.com"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d", rr.Code)
	}
	server.directory.Store.SetStatus(1, entities.StatusApproved)

	req = httptest.NewRequest(http.MethodGet, "/api/registry", nil)
	req.Host = "theharvest.org.au"
	req.Header.Set("X-Registry-Token", "registry-secret")
	req.Header.Set("X-Forwarded-Proto", "https, http")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("feed: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var feed registryFeedResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &feed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(feed.Items) != 1 || feed.Items[0].CanonicalURL != "https://theharvest.org.au/whats-on" {
		t.Fatalf("forwarded proto base url not applied: %+v", feed.Items)
	}
}

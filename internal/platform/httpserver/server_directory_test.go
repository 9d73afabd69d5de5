package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"harvest/contexts/community/directory-service/domain/entities"
)

func TestSubmitEventRejectsInvalidJSON(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSubmitEventReportsMissingField(t *testing.T) {
	server := newTestServer()
	body := []byte(`{
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
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Field != "title" {
		t.Fatalf("expected title field error, got %+v", resp)
	}
}

func TestSubmittedEventsHiddenUntilApproved(t *testing.T) {
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
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var created struct {
		Event struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"event"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Event.Status != "pending" {
		t.Fatalf("new submissions must be pending, got %q", created.Event.Status)
	}

	listed := listEvents(t, server)
	if len(listed) != 0 {
		t.Fatalf("pending events must not be public, got %d items", len(listed))
	}

	server.directory.Store.SetStatus(created.Event.ID, entities.StatusApproved)
	listed = listEvents(t, server)
	if len(listed) != 1 || listed[0].Title != "Makers Market" {
		t.Fatalf("approved event must be public, got %+v", listed)
	}
}

type listedEvent struct {
	Title string `json:"title"`
}

func listEvents(t *testing.T, server *Server) []listedEvent {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Events []listedEvent `json:"events"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Events
}

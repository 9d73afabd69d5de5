package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	accountservice "harvest/contexts/identity/account-service"
)

func TestMyBusinessRequiresAuthorization(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/mine", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestClaimRequiresAuthorization(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses/7/claim", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestClaimFlow(t *testing.T) {
	server := newTestServer()

	// Member claims the approved, unowned business.
	req := httptest.NewRequest(http.MethodPost, "/api/businesses/7/claim", nil)
	req.Header.Set("Authorization", "Bearer "+accountservice.MemberToken)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("claim: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	// The same business is no longer claimable by anyone else.
	req = httptest.NewRequest(http.MethodPost, "/api/businesses/7/claim", nil)
	req.Header.Set("Authorization", "Bearer "+accountservice.OwnerToken)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("second claim: expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}

	// One business per user.
	req = httptest.NewRequest(http.MethodPost, "/api/businesses/9/claim", nil)
	req.Header.Set("Authorization", "Bearer "+accountservice.MemberToken)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("second business: expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "You already have a claimed business" {
		t.Fatalf("unexpected conflict message: %+v", resp)
	}

	// The claimed business shows up under /mine.
	req = httptest.NewRequest(http.MethodGet, "/api/businesses/mine", nil)
	req.Header.Set("Authorization", "Bearer "+accountservice.MemberToken)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("mine: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var mine struct {
		Business *struct {
			ID int64 `json:"id"`
		} `json:"business"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &mine); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if mine.Business == nil || mine.Business.ID != 7 {
		t.Fatalf("expected business 7 under /mine, got %+v", mine.Business)
	}
}

func TestProfileUpdateRequiresOwnership(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/businesses/7/claim", nil)
	req.Header.Set("Authorization", "Bearer "+accountservice.MemberToken)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("claim: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	// A different authenticated user cannot edit the profile.
	req = httptest.NewRequest(http.MethodPatch, "/api/businesses/7/profile", strings.NewReader(`{"name":"Hijacked"}`))
	req.Header.Set("Authorization", "Bearer "+accountservice.OwnerToken)
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("non-owner edit: expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}

	// The owner can.
	req = httptest.NewRequest(http.MethodPatch, "/api/businesses/7/profile", strings.NewReader(`{"phone":"07 5494 0000"}`))
	req.Header.Set("Authorization", "Bearer "+accountservice.MemberToken)
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("owner edit: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Business struct {
			Phone string `json:"phone"`
		} `json:"business"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Business.Phone != "07 5494 0000" {
		t.Fatalf("phone not updated: %+v", resp.Business)
	}
}

func TestUnclaimedListRequiresAuthorization(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/unclaimed", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

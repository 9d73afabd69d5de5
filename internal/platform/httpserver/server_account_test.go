package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	directoryservice "harvest/contexts/community/directory-service"
	moderationservice "harvest/contexts/community/moderation-service"
	ownershipservice "harvest/contexts/community/ownership-service"
	accountservice "harvest/contexts/identity/account-service"
	newsletterservice "harvest/contexts/marketing/newsletter-service"
)

func newTestServer() *Server {
	return New(
		accountservice.NewInMemoryModule(slog.Default()),
		directoryservice.NewInMemoryModule(slog.Default()),
		moderationservice.NewInMemoryModule(slog.Default()),
		ownershipservice.NewInMemoryModule(slog.Default()),
		newsletterservice.NewInMemoryModule(slog.Default()),
		RegistryConfig{Token: "registry-secret", PublicSiteURL: "https://theharvest.example"},
		slog.Default(),
		":0",
	)
}

func TestAuthMeAnonymous(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		User *struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User != nil {
		t.Fatalf("anonymous request must return a null user, got %+v", resp.User)
	}
}

func TestAuthMeResolvesOwnerAsAdmin(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+accountservice.OwnerToken)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		User *struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.Role != "admin" {
		t.Fatalf("owner token must resolve as admin, got %+v", resp.User)
	}
}

func TestAuthMeIgnoresForgedToken(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer forged-token")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		User any `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User != nil {
		t.Fatalf("forged token must resolve anonymous, got %v", resp.User)
	}
}

func TestAuthLogout(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+accountservice.MemberToken)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("logout must acknowledge success")
	}
}

package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

type registryItem struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	CanonicalURL string   `json:"canonical_url"`
	Tags         []string `json:"tags,omitempty"`
	Status       string   `json:"status"`
	PublishedAt  string   `json:"published_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

type registryFeedResponse struct {
	Items []registryItem `json:"items"`
}

// handleRegistryFeed flattens the approved directory into a partner content
// feed. The token, when configured, must match exactly.
func (s *Server) handleRegistryFeed(w http.ResponseWriter, r *http.Request) {
	if !s.checkRegistryToken(r) {
		writeError(w, http.StatusUnauthorized, "invalid_registry_token", "Invalid registry token.")
		return
	}

	events, err := s.directory.Service.ListApprovedEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "registry_feed_failed", "Failed to build registry feed.")
		return
	}
	businesses, err := s.directory.Service.ListApprovedBusinesses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "registry_feed_failed", "Failed to build registry feed.")
		return
	}

	baseURL := s.resolveBaseURL(r)
	items := make([]registryItem, 0, len(events)+len(businesses))
	for _, event := range events {
		items = append(items, registryItem{
			ID:           "event-" + strconv.FormatInt(event.ID, 10),
			Type:         "event",
			Title:        event.Title,
			Summary:      event.Description,
			CanonicalURL: baseURL + "/whats-on",
			Tags:         categoryTags(string(event.Category)),
			Status:       "published",
			PublishedAt:  event.Date.UTC().Format(time.RFC3339),
			UpdatedAt:    event.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, business := range businesses {
		items = append(items, registryItem{
			ID:           "business-" + strconv.FormatInt(business.ID, 10),
			Type:         "business",
			Title:        business.Name,
			Summary:      business.Description,
			ImageURL:     business.ImageURL,
			CanonicalURL: baseURL + "/local-enterprises",
			Tags:         categoryTags(string(business.Category)),
			Status:       "published",
			PublishedAt:  business.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:    business.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, registryFeedResponse{Items: items})
}

func (s *Server) checkRegistryToken(r *http.Request) bool {
	expected := s.registry.Token
	if expected == "" {
		return true
	}
	provided := ""
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		provided = strings.TrimPrefix(auth, "Bearer ")
	}
	if provided == "" {
		provided = r.Header.Get("X-Registry-Token")
	}
	return provided != "" && provided == expected
}

func (s *Server) resolveBaseURL(r *http.Request) string {
	if s.registry.PublicSiteURL != "" {
		return strings.TrimRight(s.registry.PublicSiteURL, "/")
	}
	proto := "http"
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		proto = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	} else if r.TLS != nil {
		proto = "https"
	}
	host := r.Host
	if host == "" {
		host = "localhost"
	}
	return proto + "://" + host
}

func categoryTags(category string) []string {
	if category == "" {
		return nil
	}
	return []string{category}
}

package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	directoryservice "harvest/contexts/community/directory-service"
	moderationservice "harvest/contexts/community/moderation-service"
	ownershipservice "harvest/contexts/community/ownership-service"
	accountservice "harvest/contexts/identity/account-service"
	accountports "harvest/contexts/identity/account-service/ports"
	newsletterservice "harvest/contexts/marketing/newsletter-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "harvest/internal/platform/httpserver/docs"
)

// RegistryConfig drives the partner content feed.
type RegistryConfig struct {
	Token         string
	PublicSiteURL string
}

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	accounts   accountservice.Module
	directory  directoryservice.Module
	moderation moderationservice.Module
	ownership  ownershipservice.Module
	newsletter newsletterservice.Module
	registry   RegistryConfig
}

func New(
	accounts accountservice.Module,
	directory directoryservice.Module,
	moderation moderationservice.Module,
	ownership ownershipservice.Module,
	newsletter newsletterservice.Module,
	registry RegistryConfig,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		accounts:   accounts,
		directory:  directory,
		moderation: moderation,
		ownership:  ownership,
		newsletter: newsletter,
		registry:   registry,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, requestLogger(s.logger, s.mux))
}

// requestLogger tags every request with an id and logs the outcome timing.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		logger.Info("http request",
			"event", "http_request",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/auth/me", s.handleAuthMe)
	s.mux.HandleFunc("POST /api/auth/logout", s.handleAuthLogout)

	s.mux.HandleFunc("GET /api/events", s.handleListEvents)
	s.mux.HandleFunc("POST /api/events", s.handleSubmitEvent)
	s.mux.HandleFunc("GET /api/events/pending", s.handlePendingEvents)
	s.mux.HandleFunc("POST /api/events/{event_id}/status", s.handleUpdateEventStatus)

	s.mux.HandleFunc("GET /api/businesses", s.handleListBusinesses)
	s.mux.HandleFunc("POST /api/businesses", s.handleSubmitBusiness)
	s.mux.HandleFunc("GET /api/businesses/pending", s.handlePendingBusinesses)
	s.mux.HandleFunc("POST /api/businesses/{business_id}/status", s.handleUpdateBusinessStatus)
	s.mux.HandleFunc("GET /api/businesses/mine", s.handleMyBusiness)
	s.mux.HandleFunc("GET /api/businesses/unclaimed", s.handleUnclaimedBusinesses)
	s.mux.HandleFunc("POST /api/businesses/{business_id}/claim", s.handleClaimBusiness)
	s.mux.HandleFunc("PATCH /api/businesses/{business_id}/profile", s.handleUpdateBusinessProfile)

	s.mux.HandleFunc("POST /api/newsletter/subscribe", s.handleNewsletterSubscribe)

	s.mux.HandleFunc("GET /api/registry", s.handleRegistryFeed)
}

// resolveUser runs bearer resolution for the request. A nil user means the
// caller stays anonymous.
func (s *Server) resolveUser(r *http.Request) *accountports.User {
	user, err := s.accounts.Service.Resolve(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		return nil
	}
	return user
}

// requireUser resolves the caller and writes the generic 401 when anonymous.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (*accountports.User, bool) {
	user := s.resolveUser(r)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return nil, false
	}
	return user, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeFieldError(w http.ResponseWriter, status int, code string, message string, field string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message, Field: field})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

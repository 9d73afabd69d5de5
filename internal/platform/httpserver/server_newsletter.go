package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	newslettererrors "harvest/contexts/marketing/newsletter-service/domain/errors"
	newsletterhttp "harvest/contexts/marketing/newsletter-service/transport/http"
)

func (s *Server) handleNewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var req newsletterhttp.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.newsletter.Handler.SubscribeHandler(r.Context(), req)
	if err != nil {
		writeNewsletterDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Newsletter failures keep the provider-facing detail out of the response;
// the sentinel text is already the user-facing message.
func writeNewsletterDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, newslettererrors.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid_subscription", err.Error())
	case errors.Is(err, newslettererrors.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "newsletter_not_configured", newslettererrors.ErrNotConfigured.Error())
	case errors.Is(err, newslettererrors.ErrAuthFailed):
		writeError(w, http.StatusBadGateway, "newsletter_auth_failed", newslettererrors.ErrAuthFailed.Error())
	case errors.Is(err, newslettererrors.ErrDuplicateContact):
		writeError(w, http.StatusConflict, "duplicate_contact", err.Error())
	case errors.Is(err, newslettererrors.ErrConnection):
		writeError(w, http.StatusBadGateway, "newsletter_unreachable", newslettererrors.ErrConnection.Error())
	default:
		var providerErr *newslettererrors.ProviderError
		if errors.As(err, &providerErr) {
			writeError(w, http.StatusBadGateway, "newsletter_provider_error", providerErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

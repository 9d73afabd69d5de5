package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	moderationerrors "harvest/contexts/community/moderation-service/domain/errors"
	moderationports "harvest/contexts/community/moderation-service/ports"
	moderationhttp "harvest/contexts/community/moderation-service/transport/http"
	accountports "harvest/contexts/identity/account-service/ports"
)

func moderationActor(user *accountports.User) moderationports.Actor {
	return moderationports.Actor{UserID: user.ID, Role: user.Role}
}

func (s *Server) handlePendingEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.moderation.Handler.PendingEventsHandler(r.Context(), moderationActor(user))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePendingBusinesses(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.moderation.Handler.PendingBusinessesHandler(r.Context(), moderationActor(user))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r, "event_id")
	if !ok {
		return
	}

	var req moderationhttp.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.moderation.Handler.UpdateEventStatusHandler(r.Context(), eventID, req, moderationActor(user))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateBusinessStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	businessID, ok := pathID(w, r, "business_id")
	if !ok {
		return
	}

	var req moderationhttp.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.moderation.Handler.UpdateBusinessStatusHandler(r.Context(), businessID, req, moderationActor(user))
	if err != nil {
		writeModerationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeModerationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, moderationerrors.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
	case errors.Is(err, moderationerrors.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

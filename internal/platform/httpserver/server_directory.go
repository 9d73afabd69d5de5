package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	directoryerrors "harvest/contexts/community/directory-service/domain/errors"
	directoryhttp "harvest/contexts/community/directory-service/transport/http"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.ListEventsHandler(r.Context())
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitEvent(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.SubmitEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.directory.Handler.SubmitEventHandler(r.Context(), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListBusinesses(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.ListBusinessesHandler(r.Context())
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitBusiness(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.SubmitBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.directory.Handler.SubmitBusinessHandler(r.Context(), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func writeDirectoryDomainError(w http.ResponseWriter, err error) {
	var fieldErr directoryerrors.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeFieldError(w, http.StatusBadRequest, "invalid_submission", err.Error(), fieldErr.Field)
	case errors.Is(err, directoryerrors.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid_submission", err.Error())
	case errors.Is(err, directoryerrors.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", err.Error())
	case errors.Is(err, directoryerrors.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

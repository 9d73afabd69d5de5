package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	ownershiperrors "harvest/contexts/community/ownership-service/domain/errors"
	ownershipports "harvest/contexts/community/ownership-service/ports"
	ownershiphttp "harvest/contexts/community/ownership-service/transport/http"
)

func (s *Server) handleMyBusiness(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.ownership.Handler.MyBusinessHandler(r.Context(), ownershipports.Actor{UserID: user.ID})
	if err != nil {
		writeOwnershipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnclaimedBusinesses(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.ownership.Handler.UnclaimedHandler(r.Context(), ownershipports.Actor{UserID: user.ID})
	if err != nil {
		writeOwnershipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClaimBusiness(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	businessID, ok := pathID(w, r, "business_id")
	if !ok {
		return
	}

	resp, err := s.ownership.Handler.ClaimHandler(r.Context(), businessID, ownershipports.Actor{UserID: user.ID})
	if err != nil {
		writeOwnershipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateBusinessProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	businessID, ok := pathID(w, r, "business_id")
	if !ok {
		return
	}

	var req ownershiphttp.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.ownership.Handler.UpdateProfileHandler(r.Context(), businessID, ownershipports.Actor{UserID: user.ID}, req)
	if err != nil {
		writeOwnershipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeOwnershipDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ownershiperrors.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
	case errors.Is(err, ownershiperrors.ErrAlreadyOwnsBusiness):
		writeError(w, http.StatusConflict, "already_owns_business", ownershiperrors.ErrAlreadyOwnsBusiness.Error())
	case errors.Is(err, ownershiperrors.ErrClaimFailed):
		writeError(w, http.StatusConflict, "claim_failed", ownershiperrors.ErrClaimFailed.Error())
	case errors.Is(err, ownershiperrors.ErrInvalidProfile):
		writeError(w, http.StatusBadRequest, "invalid_profile", err.Error())
	case errors.Is(err, ownershiperrors.ErrBusinessNotFound):
		writeError(w, http.StatusNotFound, "business_not_found", err.Error())
	case errors.Is(err, ownershiperrors.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

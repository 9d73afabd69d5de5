package httpserver

import "net/http"

func (s *Server) handleAuthMe(w http.ResponseWriter, r *http.Request) {
	user := s.resolveUser(r)
	writeJSON(w, http.StatusOK, s.accounts.Handler.MeHandler(r.Context(), user))
}

func (s *Server) handleAuthLogout(w http.ResponseWriter, r *http.Request) {
	user := s.resolveUser(r)
	writeJSON(w, http.StatusOK, s.accounts.Handler.LogoutHandler(r.Context(), user))
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/billowria/bookshorts/internal/service"
)

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required", s.logger)
		return
	}

	session, err := s.auth.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionDTO(session), s.logger)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}

	session, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toSessionDTO(session), s.logger)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}

	access, refresh, err := s.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, tokenPairDTO{AccessToken: access, RefreshToken: refresh}, s.logger)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}

	if err := s.auth.SignOut(r.Context(), req.RefreshToken); err != nil {
		handleError(w, err, s.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleMe returns the authenticated user together with the resolved
// role, so the client learns both in one round trip.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated", s.logger)
		return
	}

	user, err := s.auth.GetUser(r.Context(), userID)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	role, err := s.auth.GetRole(r.Context(), userID)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, meDTO{User: toUserDTO(user), Role: role}, s.logger)
}

func toSessionDTO(session service.Session) sessionDTO {
	return sessionDTO{
		User:         toUserDTO(session.User),
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}
}

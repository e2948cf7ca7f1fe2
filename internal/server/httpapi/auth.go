package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"tasksync/internal/common"
	"tasksync/internal/server/models"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse flattens the user fields next to the token, the shape the
// existing clients expect.
type loginResponse struct {
	*models.User
	Token string `json:"token"`
}

// handleSignup creates a user account.
// POST /auth/signup
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// handleLogin verifies credentials and mints a token.
// POST /auth/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{User: user, Token: token})
}

// handleTokenIsValid answers a bare boolean and never hard-gates: a
// missing or invalid token is simply false.
// POST /auth/tokenIsValid
func (s *Server) handleTokenIsValid(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		respondJSON(w, http.StatusOK, false)
		return
	}

	if _, err := s.users.VerifyToken(r.Context(), token); err != nil {
		if errors.Is(err, common.ErrorInternal) {
			respondJSON(w, http.StatusInternalServerError, false)
			return
		}
		respondJSON(w, http.StatusOK, false)
		return
	}

	respondJSON(w, http.StatusOK, true)
}

// handleMe returns the authenticated user with the presented token echoed
// back.
// GET /auth
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := s.users.CurrentUser(r.Context(), userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	token, _ := TokenFromContext(r.Context())
	respondJSON(w, http.StatusOK, loginResponse{User: user, Token: token})
}

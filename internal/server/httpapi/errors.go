package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"tasksync/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps an error from the taxonomy in internal/common onto an
// HTTP status and a short, safe message. Only the sentinel text ever
// reaches the client; wrapped driver errors stay in the server log.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: common.ErrorValidation.Error()})
	case errors.Is(err, common.ErrorAlreadyExists):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: common.ErrorAlreadyExists.Error()})
	case errors.Is(err, common.ErrorInvalidCredentials):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: common.ErrorInvalidCredentials.Error()})
	case errors.Is(err, common.ErrorInvalidToken), errors.Is(err, common.ErrorUnknownSubject):
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, common.ErrorNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: common.ErrorNotFound.Error()})
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: common.ErrorInternal.Error()})
	}
}

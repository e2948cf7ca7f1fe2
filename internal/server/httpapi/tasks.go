package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"tasksync/internal/common"
	"tasksync/internal/server/services"
)

// taskRequest is the client-side task record. Timestamps must be RFC 3339;
// a malformed one fails JSON decoding and with it the whole request, which
// is what keeps batch sync all-or-nothing. Any owner field in the payload
// is ignored.
type taskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	HexColor    string    `json:"hexColor"`
	DueAt       time.Time `json:"dueAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type deleteTaskRequest struct {
	TaskID string `json:"taskId"`
}

func (req *taskRequest) toInput() *services.TaskInput {
	return &services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		HexColor:    req.HexColor,
		DueAt:       req.DueAt,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
}

// handleCreateTask persists a single task under the caller's identity.
// POST /tasks
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	task, err := s.tasks.Create(r.Context(), userID, req.toInput())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// handleListTasks returns every task owned by the caller.
// GET /tasks
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	list, err := s.tasks.List(r.Context(), userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// handleDeleteTask deletes one of the caller's own tasks by id.
// DELETE /tasks
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req deleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	if err := s.tasks.Delete(r.Context(), userID, req.TaskID); err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, true)
}

// handleSyncBatch reconciles a batch of offline-authored tasks. The whole
// batch lands in one transaction or not at all.
// POST /tasks/sync
func (s *Server) handleSyncBatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var reqs []taskRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	batch := make([]*services.TaskInput, 0, len(reqs))
	for i := range reqs {
		batch = append(batch, reqs[i].toInput())
	}

	result, err := s.tasks.SyncBatch(r.Context(), userID, batch)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.collector.RecordTasksSynced(len(result))
	respondJSON(w, http.StatusCreated, result)
}

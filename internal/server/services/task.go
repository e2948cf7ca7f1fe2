package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tasksync/internal/common"
	"tasksync/internal/dbx"
	"tasksync/internal/server/models"
	"tasksync/internal/server/repositories/repomanager"

	"github.com/google/uuid"
)

// TaskInput carries the client-supplied task fields. The owner is never
// part of the input: it always comes from the verified identity.
// CreatedAt/UpdatedAt matter only for batch sync, where records were
// authored offline and keep their original timestamps.
type TaskInput struct {
	Title       string
	Description string
	HexColor    string
	DueAt       time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskService reconciles client-authored tasks into the shared store and
// serves the connected-case CRUD.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) validate(in *TaskInput) error {
	if in.Title == "" || in.DueAt.IsZero() {
		return common.ErrorValidation
	}
	return nil
}

// newTask stamps ownership and server-side identity onto an input record.
func (s *TaskService) newTask(userID string, in *TaskInput, now time.Time) *models.Task {
	created := in.CreatedAt
	if created.IsZero() {
		created = now
	}
	updated := in.UpdatedAt
	if updated.IsZero() {
		updated = now
	}

	return &models.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		HexColor:    in.HexColor,
		DueAt:       in.DueAt,
		UserID:      userID,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

// Create persists a single task owned by userID.
func (s *TaskService) Create(ctx context.Context, userID string, in *TaskInput) (*models.Task, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Create(ctx, s.newTask(userID, in, time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// List returns every task owned by userID.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	list, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return list, nil
}

// Delete removes the task with the given id if and only if it is owned by
// userID. A missing or foreign task yields common.ErrorNotFound.
func (s *TaskService) Delete(ctx context.Context, userID string, taskID string) error {
	if taskID == "" {
		return common.ErrorValidation
	}

	repo := s.repomanager.Tasks(s.db)
	return repo.Delete(ctx, taskID, userID)
}

// SyncBatch persists a batch of offline-authored tasks under userID in one
// transaction: either every record lands or none does. Every element is
// validated before the first insert, so a malformed record never leaves a
// partial batch behind. Re-syncing the same batch inserts fresh rows.
func (s *TaskService) SyncBatch(ctx context.Context, userID string, batch []*TaskInput) ([]*models.Task, error) {
	for _, in := range batch {
		if err := s.validate(in); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()

	result := make([]*models.Task, 0, len(batch))
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)
		for _, in := range batch {
			task, err := repo.Create(ctx, s.newTask(userID, in, now))
			if err != nil {
				return fmt.Errorf("error syncing task: %w", err)
			}
			result = append(result, task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

package tasks

import (
	"context"

	"tasksync/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	Delete(ctx context.Context, id string, userID string) error
}

// Package tasks provides persistence for per-account task lists.
package tasks

import (
	"context"

	"github.com/moodframe/moodframe/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByAccount(ctx context.Context, accountID string, mood *models.Mood) ([]*models.Task, error)
	// Delete removes the task only when it belongs to accountID; a missing
	// or foreign task yields common.ErrNotFound.
	Delete(ctx context.Context, accountID, taskID string) error
}

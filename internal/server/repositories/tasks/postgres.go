package tasks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/moodframe/moodframe/internal/common"
	"github.com/moodframe/moodframe/internal/dbx"
	"github.com/moodframe/moodframe/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `
		INSERT INTO tasks (id, account_id, name, due, priority, mood, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.AccountID, task.Name, task.Due, task.Priority, task.Mood, task.Image,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID string, mood *models.Mood) ([]*models.Task, error) {
	query := `
		SELECT id, account_id, name, due, priority, mood, image, created_at, updated_at
		FROM tasks
		WHERE account_id = $1 AND ($2::text IS NULL OR mood = $2)
		ORDER BY due, created_at
	`

	var moodArg any
	if mood != nil {
		moodArg = string(*mood)
	}

	rows, err := r.db.QueryContext(ctx, query, accountID, moodArg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(
			&task.ID, &task.AccountID, &task.Name, &task.Due,
			&task.Priority, &task.Mood, &task.Image,
			&task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tasks, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, accountID, taskID string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND account_id = $2`

	result, err := r.db.ExecContext(ctx, query, taskID, accountID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

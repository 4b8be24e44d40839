package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/moodframe/moodframe/internal/common"
	"github.com/moodframe/moodframe/internal/logging"
	"github.com/moodframe/moodframe/internal/server/models"
	"github.com/moodframe/moodframe/internal/server/repositories/repomanager"
)

// SettingsInput carries the mutable profile settings. A nil Username leaves
// the stored username untouched.
type SettingsInput struct {
	Username *string
	Theme    models.Theme
}

// TaskInput carries the fields of a new task.
type TaskInput struct {
	Name     string
	Due      time.Time
	Priority models.TaskPriority
	Mood     models.Mood
	Image    string
}

// UserService implements the profile, mood, and task operations available
// to an authenticated account.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *UserService {
	return &UserService{db: db, repomanager: m, logger: logger}
}

// GetAccount loads the account's profile record.
func (s *UserService) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("loading account: %w", err)
	}
	return account, nil
}

// SetMood stores the account's current mood. Setting the mood it already
// has is rejected so the client can tell a real change from a no-op.
func (s *UserService) SetMood(ctx context.Context, accountID string, mood models.Mood) error {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("loading account: %w", err)
	}

	if account.Mood == mood {
		return &common.InvalidInputError{Message: fmt.Sprintf("Mood is already set to %s", mood)}
	}

	if err := repo.UpdateMood(ctx, accountID, mood); err != nil {
		return fmt.Errorf("updating mood: %w", err)
	}

	return nil
}

// UpdateSettings stores the username and theme. A requested username that
// another account already holds yields common.ErrConflict.
func (s *UserService) UpdateSettings(ctx context.Context, accountID string, input SettingsInput) error {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("loading account: %w", err)
	}

	if input.Username != nil && (account.Username == nil || *account.Username != *input.Username) {
		taken, err := repo.UsernameTaken(ctx, *input.Username)
		if err != nil {
			return fmt.Errorf("checking username: %w", err)
		}
		if taken {
			return common.ErrConflict
		}
	}

	username := account.Username
	if input.Username != nil {
		username = input.Username
	}

	if err := repo.UpdateSettings(ctx, accountID, username, input.Theme); err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}

	return nil
}

// CreateTask stores a new task owned by accountID.
func (s *UserService) CreateTask(ctx context.Context, accountID string, input TaskInput) (*models.Task, error) {
	if _, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("loading account: %w", err)
	}

	task := &models.Task{
		AccountID: accountID,
		Name:      input.Name,
		Due:       input.Due,
		Priority:  input.Priority,
		Mood:      input.Mood,
		Image:     input.Image,
	}

	task, err := s.repomanager.Tasks(s.db).Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	s.logger.Info(ctx, "task created", "account_id", accountID, "task_id", task.ID)

	return task, nil
}

// ListTasks returns the account's tasks, optionally filtered by mood. The
// result is never nil.
func (s *UserService) ListTasks(ctx context.Context, accountID string, mood *models.Mood) ([]*models.Task, error) {
	items, err := s.repomanager.Tasks(s.db).ListByAccount(ctx, accountID, mood)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return items, nil
}

// DeleteTask removes the task if it belongs to accountID.
func (s *UserService) DeleteTask(ctx context.Context, accountID, taskID string) error {
	if err := s.repomanager.Tasks(s.db).Delete(ctx, accountID, taskID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

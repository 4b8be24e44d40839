// Package accounts provides persistence for account records, including the
// verification state and rate-limit window embedded in them.
package accounts

import (
	"context"

	"github.com/moodframe/moodframe/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// GetByIDForUpdate locks the account row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	UpdateMood(ctx context.Context, id string, mood models.Mood) error
	UpdateSettings(ctx context.Context, id string, username *string, theme models.Theme) error
	UpdateRateLimitWindow(ctx context.Context, id string, window models.RateLimitWindow) error
	MarkVerified(ctx context.Context, id string, creditBonus int64) error
}

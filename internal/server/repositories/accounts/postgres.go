package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/moodframe/moodframe/internal/common"
	"github.com/moodframe/moodframe/internal/dbx"
	"github.com/moodframe/moodframe/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const accountColumns = `id, email, username, first_name, last_name, password_hash,
	credits, is_verified, mood, theme,
	verify_count, verify_first_request_at, verify_last_request_at,
	terms_accepted_at, terms_accepted_ip, terms_accepted_device,
	created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (id, email, username, first_name, last_name, password_hash,
			mood, theme, terms_accepted_at, terms_accepted_ip, terms_accepted_device)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.Username,
		account.FirstName, account.LastName, account.PasswordHash,
		account.Mood, account.Theme,
		account.TermsAcceptedAt, account.TermsAcceptedIP, account.TermsAcceptedDevice,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`

	var taken bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&taken); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return taken, nil
}

func (r *PostgresRepository) UpdateMood(ctx context.Context, id string, mood models.Mood) error {
	query := `UPDATE accounts SET mood = $2, updated_at = now() WHERE id = $1`
	return r.execExpectingRow(ctx, query, id, mood)
}

func (r *PostgresRepository) UpdateSettings(ctx context.Context, id string, username *string, theme models.Theme) error {
	query := `
		UPDATE accounts
		SET username = $2, theme = $3, updated_at = now()
		WHERE id = $1
	`
	return r.execExpectingRow(ctx, query, id, username, theme)
}

func (r *PostgresRepository) UpdateRateLimitWindow(ctx context.Context, id string, window models.RateLimitWindow) error {
	query := `
		UPDATE accounts
		SET verify_count = $2, verify_first_request_at = $3, verify_last_request_at = $4,
			updated_at = now()
		WHERE id = $1
	`
	return r.execExpectingRow(ctx, query, id, window.Count, window.FirstRequestAt, window.LastRequestAt)
}

// MarkVerified flips is_verified and grants the credit bonus in one atomic
// statement. The is_verified guard makes the bonus single-shot even under
// concurrent verification attempts.
func (r *PostgresRepository) MarkVerified(ctx context.Context, id string, creditBonus int64) error {
	query := `
		UPDATE accounts
		SET is_verified = TRUE, credits = credits + $2, updated_at = now()
		WHERE id = $1 AND is_verified = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, id, creditBonus)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrPersistence
	}
	return nil
}

func (r *PostgresRepository) execExpectingRow(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
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

func (r *PostgresRepository) scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	var (
		username     sql.NullString
		firstRequest sql.NullTime
		lastRequest  sql.NullTime
	)

	err := row.Scan(
		&account.ID, &account.Email, &username,
		&account.FirstName, &account.LastName, &account.PasswordHash,
		&account.Credits, &account.IsVerified, &account.Mood, &account.Theme,
		&account.VerifyRateLimit.Count, &firstRequest, &lastRequest,
		&account.TermsAcceptedAt, &account.TermsAcceptedIP, &account.TermsAcceptedDevice,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if username.Valid {
		account.Username = &username.String
	}
	account.VerifyRateLimit.FirstRequestAt = nullTimePtr(firstRequest)
	account.VerifyRateLimit.LastRequestAt = nullTimePtr(lastRequest)

	return account, nil
}

// isUniqueViolation detects a Postgres unique-constraint failure, so a
// duplicate email or username that races past the pre-insert check still
// surfaces as a conflict rather than a generic failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

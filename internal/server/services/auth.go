// Package services contains server-side business logic. This file implements
// AuthService, which coordinates registration, login, token refresh, and the
// email-verification flow.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moodframe/moodframe/internal/common"
	"github.com/moodframe/moodframe/internal/dbx"
	"github.com/moodframe/moodframe/internal/logging"
	"github.com/moodframe/moodframe/internal/server/auth"
	"github.com/moodframe/moodframe/internal/server/config"
	"github.com/moodframe/moodframe/internal/server/mail"
	"github.com/moodframe/moodframe/internal/server/models"
	"github.com/moodframe/moodframe/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh
// token. Both are self-contained JWTs; the server keeps no session table.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// PasswordHasher is the credential-hashing contract AuthService depends on.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encodedHash, password string) (bool, error)
}

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	FirstName           string
	LastName            string
	Email               string
	Password            string
	TermsAcceptedAt     time.Time
	TermsAcceptedIP     string
	TermsAcceptedDevice string
}

// AuthService provides the authentication lifecycle:
//   - Register: strength-check, hash, persist, mint tokens
//   - Login: verify credentials and mint tokens
//   - Refresh: mint a new access token from a valid refresh token
//   - RequestEmailVerification / VerifyEmail: rate-limited verification flow
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	mailer      mail.Mailer
	logger      logging.Logger

	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	verifyTokenValidityDuration  time.Duration

	rateLimitWindow      time.Duration
	rateLimitMaxRequests int
	verificationLinkBase string

	now func() time.Time
}

// NewAuthService constructs an AuthService from repositories, credential
// primitives, and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher, mailer mail.Mailer, logger logging.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		hasher:                       hasher,
		mailer:                       mailer,
		logger:                       logger,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		verifyTokenValidityDuration:  cfg.VerificationTokenValidityDuration,
		rateLimitWindow:              cfg.VerifyRateLimitWindow,
		rateLimitMaxRequests:         cfg.VerifyRateLimitMaxRequests,
		verificationLinkBase:         cfg.VerificationLinkBase,
		now:                          time.Now,
	}
}

// Register creates an account and returns a fresh token pair. The password
// must satisfy the strength policy, and the email must be unused.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.Account, *TokenPair, error) {
	strength := auth.CheckStrength(input.Password, auth.DefaultMinPasswordLength)
	if !strength.IsStrong {
		return nil, nil, &common.WeakPasswordError{Missing: strength.Missing}
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, nil, err
	}

	var account *models.Account

	// The uniqueness check and the insert run in one transaction; a
	// duplicate that races past the check still fails on the unique index
	// and surfaces as the same conflict.
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		if _, err := repo.GetByEmail(ctx, input.Email); err == nil {
			return common.ErrConflict
		} else if !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("checking email uniqueness: %w", err)
		}

		account = &models.Account{
			Email:               input.Email,
			FirstName:           input.FirstName,
			LastName:            input.LastName,
			PasswordHash:        passwordHash,
			Mood:                models.MoodNeutral,
			Theme:               models.ThemeSystem,
			TermsAcceptedAt:     input.TermsAcceptedAt,
			TermsAcceptedIP:     input.TermsAcceptedIP,
			TermsAcceptedDevice: input.TermsAcceptedDevice,
		}

		created, err := repo.Create(ctx, account)
		if err != nil {
			return fmt.Errorf("creating account: %w", err)
		}
		account = created
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.generateTokenPair(account.ID, account.Email)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info(ctx, "account registered", "account_id", account.ID)

	return account, pair, nil
}

// Login verifies the password for the account registered under email and,
// on success, returns a new token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("loading account: %w", err)
	}

	match, err := s.hasher.Verify(account.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, common.ErrInvalidCredentials
	}

	return s.generateTokenPair(account.ID, account.Email)
}

// Logout is a client-side token discard: tokens are stateless, so there is
// nothing to invalidate server-side. Kept as an explicit contract so the
// transport layer has a single place to hang session-teardown behavior.
func (s *AuthService) Logout(ctx context.Context) error {
	return nil
}

// Refresh validates a refresh token and mints a new access token carrying
// the same identity claims. The refresh token itself is never rotated; it
// stays valid until its own expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := auth.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", err
	}

	accessToken, err := auth.GenerateToken(claims.UserID, claims.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: signing access token: %v", common.ErrInternal, err)
	}

	s.logger.Info(ctx, "access token refreshed", "account_id", claims.UserID)

	return accessToken, nil
}

// RequestEmailVerification applies the per-account rate limit, persists the
// advanced window, and dispatches a verification email carrying a
// short-lived token. Mail failures propagate unretried.
func (s *AuthService) RequestEmailVerification(ctx context.Context, accountID string) error {
	if _, err := uuid.Parse(accountID); err != nil {
		return common.ErrInvalidInput
	}

	var account *models.Account

	// Load, check, and persist under one row lock so two concurrent
	// requests cannot both read the same window state and overrun the cap.
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		a, err := repo.GetByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNotFound
			}
			return fmt.Errorf("loading account: %w", err)
		}

		if a.IsVerified {
			return common.ErrConflict
		}

		decision := a.VerifyRateLimit.Apply(s.now(), s.rateLimitWindow, s.rateLimitMaxRequests)
		if !decision.Allowed {
			return &common.RateLimitError{RetryAfterMinutes: decision.RetryAfterMinutes}
		}

		if err := repo.UpdateRateLimitWindow(ctx, a.ID, decision.Window); err != nil {
			return fmt.Errorf("persisting rate-limit window: %w", err)
		}

		account = a
		return nil
	})
	if err != nil {
		return err
	}

	token, err := auth.GenerateToken(account.ID, "", s.jwtSecret, s.verifyTokenValidityDuration)
	if err != nil {
		return fmt.Errorf("%w: signing verification token: %v", common.ErrInternal, err)
	}

	link := fmt.Sprintf("%s/verify?token=%s", s.verificationLinkBase, token)

	if err := s.mailer.SendVerificationEmail(ctx, mail.VerificationEmail{
		ToEmail:          account.Email,
		ToName:           account.FirstName,
		VerificationLink: link,
	}); err != nil {
		return err
	}

	s.logger.Info(ctx, "verification email dispatched", "account_id", account.ID)

	return nil
}

// VerifyEmail consumes a verification token: it marks the account verified
// and grants the credit bonus in one atomic update, so a replayed token
// cannot apply the bonus twice.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return err
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return common.ErrInvalidInput
	}

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("loading account: %w", err)
	}

	if account.IsVerified {
		return common.ErrConflict
	}

	if err := repo.MarkVerified(ctx, account.ID, common.VerificationCreditBonus); err != nil {
		return err
	}

	s.logger.Info(ctx, "email verified", "account_id", account.ID)

	return nil
}

func (s *AuthService) generateTokenPair(accountID, email string) (*TokenPair, error) {
	access, err := auth.GenerateToken(accountID, email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: signing access token: %v", common.ErrInternal, err)
	}

	refresh, err := auth.GenerateToken(accountID, email, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: signing refresh token: %v", common.ErrInternal, err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

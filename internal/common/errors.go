// Package common defines shared constants and sentinel errors used across
// the moodframe backend. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal    = errors.New("internal error")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence error")

	// Credential errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet strength requirements")
	ErrHashing            = errors.New("hashing failure")

	// Input validation errors.
	ErrInvalidInput = errors.New("invalid input")

	// Token lifecycle errors.
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Verification flow errors.
	ErrRateLimited = errors.New("too many verification requests")
	ErrDependency  = errors.New("dependency failure")
)

// WeakPasswordError reports every strength rule the candidate password
// failed, not just the first one. It unwraps to ErrWeakPassword.
type WeakPasswordError struct {
	Missing []string
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("%v: %s", ErrWeakPassword, strings.Join(e.Missing, ", "))
}

func (e *WeakPasswordError) Unwrap() error { return ErrWeakPassword }

// RateLimitError carries the remaining cooldown, in whole minutes, until the
// verification-request window resets. It unwraps to ErrRateLimited.
type RateLimitError struct {
	RetryAfterMinutes int
}

func (e *RateLimitError) Error() string {
	unit := "minute"
	if e.RetryAfterMinutes > 1 {
		unit = "minutes"
	}
	return fmt.Sprintf("%v: please try again in %d %s", ErrRateLimited, e.RetryAfterMinutes, unit)
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// InvalidInputError carries a user-facing message for a semantic input
// rejection. It unwraps to ErrInvalidInput; unlike the sentinel, its
// message is meant to reach the client verbatim.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// ValidationError carries field-level violation messages produced by a
// declarative rule set. It unwraps to ErrInvalidInput.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidInput, strings.Join(e.Violations, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

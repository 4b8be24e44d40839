// Package models defines the persistent entities of the moodframe backend.
package models

import "time"

// Mood is the user-facing mood enum shared by accounts and tasks.
type Mood string

const (
	MoodEnergized Mood = "energized"
	MoodNeutral   Mood = "neutral"
	MoodTired     Mood = "tired"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodEnergized, MoodNeutral, MoodTired:
		return true
	}
	return false
}

// Theme selects the client color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Account is a registered user's durable identity and profile record.
// PasswordHash is only ever produced by the credential hasher and is never
// serialized or logged.
type Account struct {
	ID           string
	Email        string
	Username     *string
	FirstName    string
	LastName     string
	PasswordHash string

	Credits    int64
	IsVerified bool
	Mood       Mood
	Theme      Theme

	VerifyRateLimit RateLimitWindow

	TermsAcceptedAt     time.Time
	TermsAcceptedIP     string
	TermsAcceptedDevice string

	CreatedAt time.Time
	UpdatedAt time.Time
}

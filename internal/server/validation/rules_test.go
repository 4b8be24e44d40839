package validation

import (
	"errors"
	"testing"

	"github.com/moodframe/moodframe/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	rules := []Rule{
		{Field: "first_name", Value: "", Check: NonEmpty, Message: "First Name Required"},
		{Field: "email", Value: "nope", Check: EmailFormat, Message: "Invalid email address"},
		{Field: "password", Value: "short", Check: MinLength(8), Message: "Password Must Have a Minimum of 8 Characters"},
	}

	err := Evaluate(rules)
	require.Error(t, err)

	var verr *common.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{
		"First Name Required",
		"Invalid email address",
		"Password Must Have a Minimum of 8 Characters",
	}, verr.Violations)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestEvaluate_PassesCleanInput(t *testing.T) {
	t.Parallel()

	rules := []Rule{
		{Field: "email", Value: "a@b.com", Check: EmailFormat, Message: "Invalid email address"},
		{Field: "terms_accepted_at", Value: "2025-06-01T12:00:00Z", Check: RFC3339, Message: "Terms Accepted At Required"},
		{Field: "mood", Value: "tired", Check: OneOf("energized", "neutral", "tired"), Message: "Invalid mood"},
	}

	require.NoError(t, Evaluate(rules))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.False(t, NonEmpty("   "))
	assert.True(t, NonEmpty("x"))
	assert.False(t, EmailFormat("Jane <a@b.com>"))
	assert.True(t, EmailFormat("a@b.com"))
	assert.False(t, RFC3339("17 April 2025"))
	assert.False(t, OneOf("high", "medium", "low")("urgent"))
}

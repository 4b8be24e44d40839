package auth

import (
	"testing"

	"github.com/moodframe/moodframe/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher()

	encoded, err := h.Hash("Weakpw1!")
	require.NoError(t, err)
	assert.Contains(t, encoded, "$argon2id$")

	ok, err := h.Verify(encoded, "Weakpw1!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(encoded, "wrong-password")
	require.NoError(t, err)
	assert.False(t, ok, "mismatch must be (false, nil), not an error")
}

func TestArgon2Hasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher()

	first, err := h.Hash("Weakpw1!")
	require.NoError(t, err)
	second, err := h.Hash("Weakpw1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2Hasher_Verify_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewArgon2Hasher()

	tests := []struct {
		name string
		hash string
	}{
		{name: "not a hash", hash: "garbage"},
		{name: "wrong algorithm", hash: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", hash: "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Verify(tt.hash, "Weakpw1!")
			require.ErrorIs(t, err, common.ErrHashing)
		})
	}
}

func TestCheckStrength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		strong   bool
		missing  []string
	}{
		{
			name:     "strong password",
			password: "Passw0rd!",
			strong:   true,
		},
		{
			name:     "empty input short-circuits",
			password: "",
			missing:  []string{"Password must be a non-empty string"},
		},
		{
			name:     "whitespace-only short-circuits",
			password: "   ",
			missing:  []string{"Password must be a non-empty string"},
		},
		{
			name:     "all violations reported",
			password: "pass",
			missing:  []string{"Minimum 8 characters", "Uppercase letter", "Number", "Special character"},
		},
		{
			name:     "missing special character only",
			password: "Passw0rd",
			missing:  []string{"Special character"},
		},
		{
			name:     "missing uppercase and digit",
			password: "password!",
			missing:  []string{"Uppercase letter", "Number"},
		},
		{
			name:     "surrounding whitespace trimmed before length check",
			password: "  Passw0rd!  ",
			strong:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckStrength(tt.password, DefaultMinPasswordLength)
			assert.Equal(t, tt.strong, got.IsStrong)
			assert.Equal(t, tt.missing, got.Missing)
			assert.Equal(t, len(got.Missing) == 0, got.IsStrong)
		})
	}
}

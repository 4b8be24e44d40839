package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/moodframe/moodframe/internal/common"
	"golang.org/x/crypto/argon2"
)

// DefaultMinPasswordLength is the floor enforced by the strength policy.
const DefaultMinPasswordLength = 8

// Argon2Hasher hashes passwords with argon2id and encodes them in the
// standard "$argon2id$v=..$m=..,t=..,p=..$salt$hash" form. Hashing is
// salted, so two hashes of the same password never match.
type Argon2Hasher struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// NewArgon2Hasher returns a hasher with OWASP-recommended parameters.
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func (a *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, a.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: generating salt: %v", common.ErrHashing, err)
	}

	hash := argon2.IDKey([]byte(password), salt, a.Iterations, a.Memory, a.Parallelism, a.KeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		a.Memory,
		a.Iterations,
		a.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))

	return encoded, nil
}

// Verify reports whether password matches encodedHash. A mismatch is
// (false, nil); only malformed hash data produces an error.
func (a *Argon2Hasher) Verify(encodedHash, password string) (bool, error) {
	params, salt, hash, err := decodeArgon2Hash(encodedHash)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrHashing, err)
	}

	computed := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	return subtle.ConstantTimeCompare(hash, computed) == 1, nil
}

func decodeArgon2Hash(encodedHash string) (*Argon2Hasher, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return nil, nil, nil, fmt.Errorf("invalid hash format")
	}

	if parts[1] != "argon2id" {
		return nil, nil, nil, fmt.Errorf("unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid version: %v", err)
	}

	params := &Argon2Hasher{}
	var p int
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &p); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid parameters: %v", err)
	}
	params.Parallelism = uint8(p)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid salt encoding: %v", err)
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid hash encoding: %v", err)
	}

	params.KeyLength = uint32(len(hash))

	return params, salt, hash, nil
}

// StrengthResult lists every rule a candidate password failed. IsStrong is
// true iff Missing is empty.
type StrengthResult struct {
	IsStrong bool
	Missing  []string
}

// CheckStrength evaluates the password policy: trimmed length of at least
// minLength plus one uppercase letter, one lowercase letter, one digit and
// one special character. All violations are reported, not just the first.
// Empty or whitespace-only input short-circuits every other check.
func CheckStrength(password string, minLength int) StrengthResult {
	if strings.TrimSpace(password) == "" {
		return StrengthResult{
			IsStrong: false,
			Missing:  []string{"Password must be a non-empty string"},
		}
	}

	trimmed := strings.TrimSpace(password)
	var missing []string

	if len([]rune(trimmed)) < minLength {
		missing = append(missing, fmt.Sprintf("Minimum %d characters", minLength))
	}
	if !strings.ContainsFunc(trimmed, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		missing = append(missing, "Uppercase letter")
	}
	if !strings.ContainsFunc(trimmed, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		missing = append(missing, "Lowercase letter")
	}
	if !strings.ContainsFunc(trimmed, func(r rune) bool { return r >= '0' && r <= '9' }) {
		missing = append(missing, "Number")
	}
	if !strings.ContainsFunc(trimmed, isSpecial) {
		missing = append(missing, "Special character")
	}

	return StrengthResult{IsStrong: len(missing) == 0, Missing: missing}
}

func isSpecial(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return false
	}
	return true
}

// Package validation evaluates declarative constraint sets against request
// input, producing the full list of violation messages rather than stopping
// at the first failure.
package validation

import (
	"net/mail"
	"strings"
	"time"

	"github.com/moodframe/moodframe/internal/common"
)

// Rule binds one field value to a predicate and its violation message.
type Rule struct {
	Field   string
	Value   string
	Check   func(value string) bool
	Message string
}

// Evaluate runs every rule and returns a *common.ValidationError carrying
// all violations, or nil when the input passes.
func Evaluate(rules []Rule) error {
	var violations []string
	for _, r := range rules {
		if !r.Check(r.Value) {
			violations = append(violations, r.Message)
		}
	}
	if len(violations) > 0 {
		return &common.ValidationError{Violations: violations}
	}
	return nil
}

// NonEmpty passes when the trimmed value is not empty.
func NonEmpty(v string) bool {
	return strings.TrimSpace(v) != ""
}

// EmailFormat passes for a parseable address without a display name.
func EmailFormat(v string) bool {
	addr, err := mail.ParseAddress(v)
	return err == nil && addr.Address == v
}

// MinLength passes when the value has at least n characters.
func MinLength(n int) func(string) bool {
	return func(v string) bool {
		return len([]rune(v)) >= n
	}
}

// RFC3339 passes for timestamps like "2025-06-01T12:00:00Z".
func RFC3339(v string) bool {
	_, err := time.Parse(time.RFC3339, v)
	return err == nil
}

// OneOf passes when the value equals one of the options.
func OneOf(options ...string) func(string) bool {
	return func(v string) bool {
		for _, o := range options {
			if v == o {
				return true
			}
		}
		return false
	}
}

package models

import (
	"math"
	"time"
)

// RateLimitWindow is the per-account sliding counter bounding how many
// verification emails may be requested. It is persisted with the owning
// account so the limit survives restarts and is shared across instances.
type RateLimitWindow struct {
	Count          int
	FirstRequestAt *time.Time
	LastRequestAt  *time.Time
}

// RateLimitDecision is the outcome of applying one "verification requested"
// event to a window.
type RateLimitDecision struct {
	Allowed           bool
	RetryAfterMinutes int
	Window            RateLimitWindow
}

// Apply runs one transition of the rate-limit state machine at time now.
//
// A request outside the window (or the very first request) resets the
// counter to 1. Inside the window the counter increments until maxRequests,
// after which requests are rejected with the remaining cooldown rounded up
// to whole minutes. Rejection leaves the window unchanged.
func (w RateLimitWindow) Apply(now time.Time, window time.Duration, maxRequests int) RateLimitDecision {
	if w.FirstRequestAt == nil || now.Sub(*w.FirstRequestAt) >= window {
		t := now
		return RateLimitDecision{
			Allowed: true,
			Window:  RateLimitWindow{Count: 1, FirstRequestAt: &t, LastRequestAt: &t},
		}
	}

	if w.Count < maxRequests {
		t := now
		return RateLimitDecision{
			Allowed: true,
			Window: RateLimitWindow{
				Count:          w.Count + 1,
				FirstRequestAt: w.FirstRequestAt,
				LastRequestAt:  &t,
			},
		}
	}

	remaining := window - now.Sub(*w.FirstRequestAt)
	return RateLimitDecision{
		Allowed:           false,
		RetryAfterMinutes: int(math.Ceil(remaining.Minutes())),
		Window:            w,
	}
}

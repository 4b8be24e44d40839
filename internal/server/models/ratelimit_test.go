package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWindow = 5 * time.Minute
	testMax    = 3
)

func TestRateLimitWindow_FirstRequestResets(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	d := RateLimitWindow{}.Apply(now, testWindow, testMax)

	require.True(t, d.Allowed)
	assert.Equal(t, 1, d.Window.Count)
	require.NotNil(t, d.Window.FirstRequestAt)
	assert.Equal(t, now, *d.Window.FirstRequestAt)
	assert.Equal(t, now, *d.Window.LastRequestAt)
}

func TestRateLimitWindow_IncrementsInsideWindow(t *testing.T) {
	t.Parallel()

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := first.Add(time.Minute)

	w := RateLimitWindow{Count: 1, FirstRequestAt: &first, LastRequestAt: &first}
	d := w.Apply(now, testWindow, testMax)

	require.True(t, d.Allowed)
	assert.Equal(t, 2, d.Window.Count)
	assert.Equal(t, first, *d.Window.FirstRequestAt, "first_request_at must not move")
	assert.Equal(t, now, *d.Window.LastRequestAt)
}

func TestRateLimitWindow_RejectsAtCap(t *testing.T) {
	t.Parallel()

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := first.Add(time.Minute)

	w := RateLimitWindow{Count: 3, FirstRequestAt: &first, LastRequestAt: &now}
	d := w.Apply(now, testWindow, testMax)

	require.False(t, d.Allowed)
	assert.Equal(t, 4, d.RetryAfterMinutes, "5m window minus 1m elapsed, rounded up")
	assert.Equal(t, w, d.Window, "rejection must leave the window unchanged")
}

func TestRateLimitWindow_ResetAfterWindowElapsed(t *testing.T) {
	t.Parallel()

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := first.Add(testWindow)

	w := RateLimitWindow{Count: 3, FirstRequestAt: &first, LastRequestAt: &first}
	d := w.Apply(now, testWindow, testMax)

	require.True(t, d.Allowed)
	assert.Equal(t, 1, d.Window.Count)
	assert.Equal(t, now, *d.Window.FirstRequestAt)
}

func TestRateLimitWindow_FourthRequestScenario(t *testing.T) {
	t.Parallel()

	// Three requests inside one minute, then a fourth within the window.
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := RateLimitWindow{}

	for i := 0; i < 3; i++ {
		d := w.Apply(start.Add(time.Duration(i)*20*time.Second), testWindow, testMax)
		require.True(t, d.Allowed, "request %d should pass", i+1)
		w = d.Window
	}

	d := w.Apply(start.Add(time.Minute), testWindow, testMax)
	require.False(t, d.Allowed)
	assert.Equal(t, 4, d.RetryAfterMinutes)

	// The same fourth request after the window succeeds and resets to 1.
	d = w.Apply(start.Add(testWindow+time.Second), testWindow, testMax)
	require.True(t, d.Allowed)
	assert.Equal(t, 1, d.Window.Count)
}

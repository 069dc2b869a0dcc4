package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.Equal(t, 1*time.Second, config.InitialDelay)
	require.Equal(t, 30*time.Second, config.MaxDelay)
	require.Equal(t, float64(2), config.Multiplier)
	require.Equal(t, 10, config.MaxAttempts)
	require.Equal(t, 100*time.Millisecond, config.TickInterval)
}

func TestDelay(t *testing.T) {
	config := DefaultConfig()

	testCases := []struct {
		attempt  int
		expected time.Duration
	}{
		{attempt: 0, expected: 1 * time.Second},
		{attempt: 1, expected: 2 * time.Second},
		{attempt: 2, expected: 4 * time.Second},
		{attempt: 3, expected: 8 * time.Second},
		{attempt: 4, expected: 16 * time.Second},
		// Capped by MaxDelay from here on.
		{attempt: 5, expected: 30 * time.Second},
		{attempt: 6, expected: 30 * time.Second},
		{attempt: 9, expected: 30 * time.Second},
	}

	for _, testCase := range testCases {
		delay := Delay(config, testCase.attempt)
		require.Equal(t, testCase.expected, delay, "attempt %d", testCase.attempt)
	}
}

func TestDelayCustomConfig(t *testing.T) {
	config := Config{
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     3 * time.Second,
		Multiplier:   3,
	}

	require.Equal(t, 500*time.Millisecond, Delay(config, 0))
	require.Equal(t, 1500*time.Millisecond, Delay(config, 1))
	require.Equal(t, 3*time.Second, Delay(config, 2))
}

func TestDelayIsDeterministic(t *testing.T) {
	config := DefaultConfig()
	for attempt := 0; attempt < 10; attempt++ {
		first := Delay(config, attempt)
		second := Delay(config, attempt)
		require.Equal(t, first, second)
	}
}

package backoff

import (
	"math"
	"time"
)

type Config struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	MaxAttempts  int
	TickInterval time.Duration
}

var defaultConfig = Config{
	InitialDelay: 1 * time.Second,
	MaxDelay:     30 * time.Second,
	Multiplier:   2,
	MaxAttempts:  10,
	TickInterval: 100 * time.Millisecond,
}

func DefaultConfig() Config {
	return defaultConfig
}

// Delay returns the reconnection delay for the given zero-based attempt:
// min(initial * multiplier^attempt, max). Deterministic, no jitter.
func Delay(config Config, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(config.InitialDelay) * math.Pow(config.Multiplier, float64(attempt))
	if delay > float64(config.MaxDelay) {
		return config.MaxDelay
	}
	return time.Duration(delay)
}

package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Config controls the exponential backoff schedule.
type Config struct {
	// MaxRetries is the number of retry attempts after the initial one.
	MaxRetries int
	// InitialInterval is the first backoff interval (default 1s).
	InitialInterval time.Duration
	// MaxInterval caps the backoff interval (default 30s).
	MaxInterval time.Duration
	// Multiplier grows the interval after each attempt (default 2.0).
	Multiplier float64
	// JitterFactor adds ±N% random jitter to each interval (default 0.1).
	JitterFactor float64
}

// DefaultConfig returns the standard schedule: 1s, 2s, 4s, 8s, 16s, 30s capped.
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:      5,
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
		JitterFactor:    0.1,
	}
}

func (c *Config) normalize() {
	if c.InitialInterval <= 0 {
		c.InitialInterval = time.Second
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 30 * time.Second
	}
	if c.Multiplier <= 0 {
		c.Multiplier = 2.0
	}
	if c.JitterFactor < 0 {
		c.JitterFactor = 0
	}
	if c.JitterFactor > 1 {
		c.JitterFactor = 1
	}
}

// Operation is the function to be retried.
type Operation func(ctx context.Context) error

// PermanentError stops the retry loop immediately.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }

func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent marks an error as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Do runs op until it succeeds, returns a permanent error, exhausts the
// schedule, or the context ends. The returned error is the one from the
// last attempt.
func Do(ctx context.Context, cfg *Config, op Operation) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.normalize()

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return fmt.Errorf("%w (after: %w)", err, lastErr)
			}
			return err
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		var perm *PermanentError
		if errors.As(err, &perm) {
			return perm.Err
		}

		if attempt == cfg.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w (after: %w)", ctx.Err(), lastErr)
		case <-time.After(cfg.interval(attempt)):
		}
	}
	return lastErr
}

func (c *Config) interval(attempt int) time.Duration {
	interval := float64(c.InitialInterval) * math.Pow(c.Multiplier, float64(attempt))
	if c.JitterFactor > 0 {
		jitter := interval * c.JitterFactor
		interval += (rand.Float64()*2 - 1) * jitter
	}
	if interval > float64(c.MaxInterval) {
		interval = float64(c.MaxInterval)
	}
	if interval < 0 {
		interval = float64(c.InitialInterval)
	}
	return time.Duration(interval)
}

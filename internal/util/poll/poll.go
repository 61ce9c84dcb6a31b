package poll

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds polling configuration.
type Config struct {
	Interval    time.Duration
	Timeout     time.Duration
	MaxAttempts int
}

// Option is a functional option for polling configuration.
type Option func(*Config)

// WithInterval sets the delay between attempts.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

// WithTimeout sets the total time budget across all attempts.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithMaxAttempts sets the maximum number of check invocations.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// Status is the tri-state outcome of a single readiness check.
type Status[T any] struct {
	ready  bool
	failed bool
	value  T
	err    error
}

// NotReady reports that the resource is not ready yet and polling
// should continue. A resource that does not exist yet is NotReady,
// not Failed.
func NotReady[T any]() Status[T] {
	return Status[T]{}
}

// Ready reports that the resource is ready and carries its payload.
func Ready[T any](v T) Status[T] {
	return Status[T]{ready: true, value: v}
}

// Failed reports a hard failure that further polling cannot recover
// from (e.g. the resource entered a terminal error state).
func Failed[T any](err error) Status[T] {
	return Status[T]{failed: true, err: err}
}

// Check evaluates the readiness of a resource once.
type Check[T any] func(ctx context.Context) Status[T]

// TimeoutError reports that polling exhausted its attempt or time
// budget without the resource becoming ready.
type TimeoutError struct {
	Attempts int
	Interval time.Duration
	Elapsed  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("not ready after %d attempts over %v (interval %v)",
		e.Attempts, e.Elapsed.Round(time.Millisecond), e.Interval)
}

// IsTimeout reports whether err is a polling timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// Until repeatedly evaluates check until it returns Ready, a hard
// Failed, or the attempt/time budget is exhausted, whichever comes
// first. The first attempt runs immediately; subsequent attempts are
// separated by the configured interval. Context cancellation is
// respected between attempts.
func Until[T any](ctx context.Context, check Check[T], opts ...Option) (T, error) {
	cfg := &Config{
		Interval:    5 * time.Second,
		Timeout:     10 * time.Minute,
		MaxAttempts: 120,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var zero T
	start := time.Now()

	for attempt := 1; ; attempt++ {
		st := check(ctx)
		switch {
		case st.ready:
			return st.value, nil
		case st.failed:
			return zero, st.err
		}

		elapsed := time.Since(start)
		if attempt >= cfg.MaxAttempts || elapsed+cfg.Interval > cfg.Timeout {
			return zero, &TimeoutError{
				Attempts: attempt,
				Interval: cfg.Interval,
				Elapsed:  elapsed,
			}
		}

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("polling cancelled after %d attempts: %w", attempt, ctx.Err())
		case <-time.After(cfg.Interval):
		}
	}
}

package poll

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestUntil_ReadyImmediately(t *testing.T) {
	t.Parallel()
	calls := 0
	check := func(_ context.Context) Status[string] {
		calls++
		return Ready("payload")
	}

	got, err := Until(context.Background(), check, WithInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "payload" {
		t.Errorf("expected payload, got %q", got)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestUntil_ReadyAfterNotReady(t *testing.T) {
	t.Parallel()
	const notReadyCalls = 4
	calls := 0
	check := func(_ context.Context) Status[int] {
		calls++
		if calls <= notReadyCalls {
			return NotReady[int]()
		}
		return Ready(42)
	}

	got, err := Until(context.Background(), check,
		WithInterval(time.Millisecond),
		WithMaxAttempts(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	// Ready payload is returned on the first successful attempt,
	// exactly one call after the NotReady streak.
	if calls != notReadyCalls+1 {
		t.Errorf("expected %d calls, got %d", notReadyCalls+1, calls)
	}
}

func TestUntil_MaxAttemptsExhausted(t *testing.T) {
	t.Parallel()
	calls := 0
	check := func(_ context.Context) Status[int] {
		calls++
		return NotReady[int]()
	}

	_, err := Until(context.Background(), check,
		WithInterval(time.Millisecond),
		WithMaxAttempts(3))
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !IsTimeout(err) {
		t.Errorf("expected timeout error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected exactly 3 calls, got %d", calls)
	}

	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TimeoutError, got %T", err)
	}
	if te.Attempts != 3 {
		t.Errorf("expected 3 recorded attempts, got %d", te.Attempts)
	}
}

func TestUntil_TimeBudgetExhausted(t *testing.T) {
	t.Parallel()
	check := func(_ context.Context) Status[int] {
		return NotReady[int]()
	}

	_, err := Until(context.Background(), check,
		WithInterval(50*time.Millisecond),
		WithTimeout(80*time.Millisecond),
		WithMaxAttempts(1000))
	if !IsTimeout(err) {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestUntil_HardFailureStopsPolling(t *testing.T) {
	t.Parallel()
	hardErr := errors.New("instance terminated")
	calls := 0
	check := func(_ context.Context) Status[int] {
		calls++
		return Failed[int](hardErr)
	}

	_, err := Until(context.Background(), check,
		WithInterval(time.Millisecond),
		WithMaxAttempts(10))
	if !errors.Is(err, hardErr) {
		t.Fatalf("expected hard failure to propagate, got %v", err)
	}
	if calls != 1 {
		t.Errorf("hard failure must not be retried, got %d calls", calls)
	}
	if IsTimeout(err) {
		t.Error("hard failure must not be reported as timeout")
	}
}

func TestUntil_ContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	check := func(_ context.Context) Status[int] {
		cancel()
		return NotReady[int]()
	}

	_, err := Until(ctx, check,
		WithInterval(time.Minute),
		WithMaxAttempts(10))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

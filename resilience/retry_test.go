package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	cfg := DefaultRetryConfig()
	callCount := 0

	result, err := Retry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "success", nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result != "success" {
		t.Errorf("expected 'success', got %s", result)
	}
	if callCount != 1 {
		t.Errorf("expected 1 call, got %d", callCount)
	}
}

func TestRetry_SucceedsAfterRetry(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		BackoffFactor:  2.0,
	}
	callCount := 0

	result, err := Retry(context.Background(), cfg, func() (string, error) {
		callCount++
		if callCount < 3 {
			return "", errors.New("temporary error")
		}
		return "success", nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result != "success" {
		t.Errorf("expected 'success', got %s", result)
	}
	if callCount != 3 {
		t.Errorf("expected 3 calls, got %d", callCount)
	}
}

func TestRetry_ExceedsMaxAttempts(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		BackoffFactor:  2.0,
	}
	callCount := 0
	testErr := errors.New("persistent error")

	_, err := Retry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "", testErr
	})

	if !errors.Is(err, testErr) {
		t.Errorf("expected testErr, got %v", err)
	}
	if callCount != 3 {
		t.Errorf("expected 3 calls, got %d", callCount)
	}
}

func TestRetry_RespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	callCount := 0
	_, err := Retry(ctx, DefaultRetryConfig(), func() (string, error) {
		callCount++
		return "", errors.New("should not retry")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if callCount != 0 {
		t.Errorf("expected 0 calls with cancelled context, got %d", callCount)
	}
}

func TestRetry_NonRetryableError(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:    5,
		InitialBackoff: time.Millisecond,
		RetryIf:        func(err error) bool { return false },
	}
	callCount := 0

	_, err := Retry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "", errors.New("fatal")
	})

	if err == nil {
		t.Fatal("expected error")
	}
	if callCount != 1 {
		t.Errorf("expected 1 call for non-retryable error, got %d", callCount)
	}
}

func TestBackoff_GrowsAndResets(t *testing.T) {
	b := NewBackoff(time.Second, 10*time.Second, 2.0)

	d1 := b.Next()
	d2 := b.Next()
	d3 := b.Next()

	if d1 != time.Second {
		t.Errorf("expected 1s, got %v", d1)
	}
	if d2 != 2*time.Second {
		t.Errorf("expected 2s, got %v", d2)
	}
	if d3 != 4*time.Second {
		t.Errorf("expected 4s, got %v", d3)
	}

	b.Reset()
	if d := b.Next(); d != time.Second {
		t.Errorf("expected reset to 1s, got %v", d)
	}
}

func TestBackoff_CapsAtMax(t *testing.T) {
	b := NewBackoff(time.Second, 3*time.Second, 2.0)
	var last time.Duration
	for i := 0; i < 6; i++ {
		last = b.Next()
	}
	if last != 3*time.Second {
		t.Errorf("expected cap at 3s, got %v", last)
	}
}

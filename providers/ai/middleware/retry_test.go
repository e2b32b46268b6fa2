package middleware

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/guestlens/guestlens/providers/ai"
)

// TestRetryMiddleware_SuccessOnFirstTry verifies that when the provider succeeds
// immediately, no retry is performed and the response is returned as-is.
func TestRetryMiddleware_SuccessOnFirstTry(t *testing.T) {
	seq := &mockSendSequence{
		responses: []*ai.ChatResponse{{Content: "ok", FinishReason: "stop"}},
	}

	chain := NewRetryMiddleware(RetryConfig{MaxRetries: 3})(seq.next)

	resp, err := chain(context.Background(), ai.ChatRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("expected 'ok', got %q", resp.Content)
	}
	if seq.callCount != 1 {
		t.Errorf("expected 1 call, got %d", seq.callCount)
	}
}

// TestRetryMiddleware_RetriesOnTransientError verifies that a 429 error
// triggers a retry and the eventual success is returned.
func TestRetryMiddleware_RetriesOnTransientError(t *testing.T) {
	seq := &mockSendSequence{
		errors:    []error{fmt.Errorf("non-2xx status 429: too many requests")},
		responses: []*ai.ChatResponse{nil, {Content: "recovered", FinishReason: "stop"}},
	}

	chain := NewRetryMiddleware(RetryConfig{
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	})(seq.next)

	resp, err := chain(context.Background(), ai.ChatRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "recovered" {
		t.Errorf("expected 'recovered', got %q", resp.Content)
	}
	if seq.callCount != 2 {
		t.Errorf("expected 2 calls, got %d", seq.callCount)
	}
}

// TestRetryMiddleware_NonRetryableError verifies that a non-transient error is
// propagated without further attempts.
func TestRetryMiddleware_NonRetryableError(t *testing.T) {
	seq := &mockSendSequence{
		errors: []error{errors.New("non-2xx status 401: unauthorized")},
	}

	chain := NewRetryMiddleware(RetryConfig{
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
	})(seq.next)

	_, err := chain(context.Background(), ai.ChatRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if seq.callCount != 1 {
		t.Errorf("expected 1 call for non-retryable error, got %d", seq.callCount)
	}
	if errors.Is(err, ErrRetryExhausted) {
		t.Error("non-retryable error should not wrap ErrRetryExhausted")
	}
}

// TestRetryMiddleware_Exhaustion verifies that exhausting retries returns an
// error wrapping both ErrRetryExhausted and the last provider error.
func TestRetryMiddleware_Exhaustion(t *testing.T) {
	lastErr := errors.New("non-2xx status 503: unavailable")
	seq := &mockSendSequence{
		errors: []error{lastErr, lastErr, lastErr},
	}

	chain := NewRetryMiddleware(RetryConfig{
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	})(seq.next)

	_, err := chain(context.Background(), ai.ChatRequest{})
	if err == nil {
		t.Fatal("expected error after exhaustion, got nil")
	}
	if !errors.Is(err, ErrRetryExhausted) {
		t.Errorf("expected ErrRetryExhausted in chain, got: %v", err)
	}
	if !errors.Is(err, lastErr) {
		t.Errorf("expected last provider error in chain, got: %v", err)
	}
	if seq.callCount != 3 {
		t.Errorf("expected 3 calls (1 original + 2 retries), got %d", seq.callCount)
	}
}

// TestRetryMiddleware_ContextCancelled verifies that a context cancelled during
// backoff aborts the retry loop.
func TestRetryMiddleware_ContextCancelled(t *testing.T) {
	seq := &mockSendSequence{
		errors: []error{errors.New("non-2xx status 500: boom")},
	}

	chain := NewRetryMiddleware(RetryConfig{
		MaxRetries:     3,
		InitialBackoff: time.Minute, // long enough that cancellation wins
	})(seq.next)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := chain(ctx, ai.ChatRequest{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
	if seq.callCount != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", seq.callCount)
	}
}

// TestComputeBackoff verifies exponential growth and the MaxBackoff cap.
func TestComputeBackoff(t *testing.T) {
	config := RetryConfig{
		InitialBackoff: time.Second,
		MaxBackoff:     4 * time.Second,
		BackoffFactor:  2.0,
		JitterFraction: 0, // deterministic for the test
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 4 * time.Second}, // capped
	}

	for _, tt := range tests {
		if got := computeBackoff(config, tt.attempt); got != tt.want {
			t.Errorf("computeBackoff(attempt=%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

// TestDefaultRetryableFunc checks the transient status code matching.
func TestDefaultRetryableFunc(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("non-2xx status 429: slow down"), true},
		{errors.New("non-2xx status 503: unavailable"), true},
		{errors.New("non-2xx status 404: not found"), false},
		{errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		if got := defaultRetryableFunc(tt.err); got != tt.want {
			t.Errorf("defaultRetryableFunc(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

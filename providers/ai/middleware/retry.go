package middleware

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/guestlens/guestlens/providers/ai"
)

// RetryConfig tunes the retry middleware. Zero-valued fields are filled with
// the documented defaults when the middleware is built.
type RetryConfig struct {
	// MaxRetries bounds the number of attempts after the initial call, so
	// MaxRetries of 3 allows up to 4 provider calls in total. Default: 3.
	MaxRetries int

	// InitialBackoff is the wait before the first retry. Default: 1s.
	InitialBackoff time.Duration

	// MaxBackoff caps every computed wait. Default: 30s.
	MaxBackoff time.Duration

	// BackoffFactor grows the wait exponentially between attempts:
	// wait = min(InitialBackoff * BackoffFactor^attempt, MaxBackoff).
	// Default: 2.0.
	BackoffFactor float64

	// JitterFraction adds random noise in [0, JitterFraction*wait] so that
	// concurrent clients do not retry in lockstep. Default: 0.1.
	JitterFraction float64

	// RetryableFunc decides whether an error is worth retrying. The default
	// matches transient HTTP status codes in the error text.
	RetryableFunc func(error) bool
}

// defaultRetryableFunc treats 429 and common 5xx statuses as transient.
// Provider errors carry the status code as text, so this is a string match.
func defaultRetryableFunc(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	for _, code := range []string{"429", "500", "502", "503", "529"} {
		if strings.Contains(msg, code) {
			return true
		}
	}

	return false
}

func (c *RetryConfig) withDefaults() {
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.InitialBackoff == 0 {
		c.InitialBackoff = time.Second
	}
	if c.MaxBackoff == 0 {
		c.MaxBackoff = 30 * time.Second
	}
	if c.BackoffFactor == 0 {
		c.BackoffFactor = 2.0
	}
	if c.JitterFraction == 0 {
		c.JitterFraction = 0.1
	}
	if c.RetryableFunc == nil {
		c.RetryableFunc = defaultRetryableFunc
	}
}

// computeBackoff returns the wait before retry number attempt (0-indexed),
// capped at MaxBackoff and inflated by random jitter.
func computeBackoff(config RetryConfig, attempt int) time.Duration {
	wait := float64(config.InitialBackoff) * math.Pow(config.BackoffFactor, float64(attempt))
	wait = math.Min(wait, float64(config.MaxBackoff))

	jitter := wait * config.JitterFraction * rand.Float64() //nolint:gosec // jitter needs no cryptographic source
	return time.Duration(wait + jitter)
}

// NewRetryMiddleware retries failed sends per config. When every attempt
// fails the returned error wraps both [ErrRetryExhausted] and the last
// provider error, so callers can branch on either with errors.Is.
func NewRetryMiddleware(config RetryConfig) Middleware {
	config.withDefaults()

	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			var lastErr error

			for attempt := 0; attempt <= config.MaxRetries; attempt++ {
				if attempt > 0 {
					select {
					case <-ctx.Done():
						return nil, ctx.Err()
					case <-time.After(computeBackoff(config, attempt-1)):
					}
				}

				response, err := next(ctx, request)
				if err == nil {
					return response, nil
				}
				lastErr = err

				if !config.RetryableFunc(err) {
					return nil, err
				}
			}

			return nil, fmt.Errorf("%w after %d retries: %w", ErrRetryExhausted, config.MaxRetries, lastErr)
		}
	}
}

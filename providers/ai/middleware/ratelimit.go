package middleware

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/guestlens/guestlens/providers/ai"
)

// NewRateLimitMiddleware creates a Middleware that throttles outgoing provider
// calls through the given token-bucket limiter. Wait blocks until a token is
// available or the context is canceled, so upstream timeouts still apply.
//
// A nil limiter disables throttling and the middleware becomes a no-op.
func NewRateLimitMiddleware(limiter *rate.Limiter) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					return nil, fmt.Errorf("rate limit wait: %w", err)
				}
			}
			return next(ctx, request)
		}
	}
}

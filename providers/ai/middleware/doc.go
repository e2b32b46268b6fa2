// Package middleware provides composable wrappers around an ai.Provider's
// SendMessage path: retry with exponential backoff, per-request timeouts,
// structured request/response logging, and client-side rate limiting.
//
// Middlewares are plain functions over SendFunc. Wrap applies them
// outermost-first, so the first middleware in the list is the first to see an
// incoming request:
//
//	provider = middleware.Wrap(provider,
//		middleware.NewLoggingMiddleware(logger, middleware.LogLevelStandard),
//		middleware.NewRetryMiddleware(middleware.RetryConfig{}),
//		middleware.NewTimeoutMiddleware(60*time.Second),
//	)
package middleware

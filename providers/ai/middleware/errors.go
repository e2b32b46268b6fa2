package middleware

import "errors"

// ErrRetryExhausted is returned by the retry middleware when all retry attempts
// have been used without a successful response. The returned error wraps the
// last provider error, so both can be inspected:
//
//	if errors.Is(err, middleware.ErrRetryExhausted) {
//		// all attempts failed
//	}
var ErrRetryExhausted = errors.New("guestlens: all retry attempts exhausted")

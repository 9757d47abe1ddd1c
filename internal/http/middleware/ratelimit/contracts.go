package ratelimit

import "time"

// Limiter decides whether a request keyed by key may proceed. When it may not,
// retryAfter is the time until the next token is available.
type Limiter interface {
	Allow(key string) (ok bool, retryAfter time.Duration)
}

package ports

import (
	"context"
	"time"
)

// Limit is a named rate-limit configuration.
type Limit struct {
	// MaxRequests is the maximum number of requests allowed in the window.
	MaxRequests int
	// Window is the trailing time interval requests are counted over.
	Window time.Duration
	// Prefix namespaces this limit's keys in the shared store.
	Prefix string
}

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed bool
	// RetryAfter is the suggested wait before retrying when not allowed.
	RetryAfter time.Duration
}

// RateLimiter decides admit/reject for a caller under a given limit.
//
// Failure contract: the limiter fails open. If the backing store is
// unreachable the request is admitted and no error surfaces.
type RateLimiter interface {
	Check(ctx context.Context, limit Limit, callerID string) Decision
}

// RateLimitStore is the persistence interface backing the limiter. Records
// live in a shared collection keyed by "<prefix>:<callerID>".
type RateLimitStore interface {
	// PurgeBefore deletes all records for key older than cutoff.
	PurgeBefore(ctx context.Context, key string, cutoff time.Time) error
	// CountSince counts records for key created at or after cutoff.
	CountSince(ctx context.Context, key string, cutoff time.Time) (int64, error)
	// Record inserts one request event for key at the given instant.
	Record(ctx context.Context, key string, at time.Time) error
}

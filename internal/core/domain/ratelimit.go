package domain

import "time"

// RateLimitRecord represents a single accepted request event. The set of
// records sharing a Key approximates the caller's request count within the
// limiter's window; records older than the window are purged lazily on the
// next check for that key-space.
type RateLimitRecord struct {
	Key       string    `bson:"key"`
	CreatedAt time.Time `bson:"created_at"`
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// Standing limiter configurations. Auth endpoints get the tight limit;
// everything else the general API limit.
var (
	AuthLimit = ports.Limit{MaxRequests: 5, Window: 60 * time.Second, Prefix: "auth"}
	APILimit  = ports.Limit{MaxRequests: 30, Window: 60 * time.Second, Prefix: "api"}
)

// RateLimitService implements fixed-window rate limiting over a shared
// persistent collection of per-request records.
type RateLimitService struct {
	store ports.RateLimitStore
	now   func() time.Time
	log   zerolog.Logger
}

func NewRateLimitService(store ports.RateLimitStore, log zerolog.Logger) *RateLimitService {
	return &RateLimitService{store: store, now: time.Now, log: log}
}

// Check decides admit/reject for callerID under limit.
//
// The purge of expired records is best-effort garbage collection: it bounds
// storage growth but is not required for the correctness of the current
// decision. The count-then-record sequence is not atomic: two concurrent
// requests from the same caller may both pass the count, a small bounded
// overshoot accepted for coarse abuse prevention.
//
// Fail-open: every store error admits the request.
func (s *RateLimitService) Check(ctx context.Context, limit ports.Limit, callerID string) ports.Decision {
	key := limit.Prefix + ":" + callerID
	windowStart := s.now().Add(-limit.Window)

	if err := s.store.PurgeBefore(ctx, key, windowStart); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("rate limit purge failed, admitting")
		return ports.Decision{Allowed: true}
	}

	count, err := s.store.CountSince(ctx, key, windowStart)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("rate limit count failed, admitting")
		return ports.Decision{Allowed: true}
	}

	if count >= int64(limit.MaxRequests) {
		return ports.Decision{Allowed: false, RetryAfter: limit.Window}
	}

	if err := s.store.Record(ctx, key, s.now()); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("rate limit record failed, admitting")
	}

	return ports.Decision{Allowed: true}
}

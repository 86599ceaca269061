package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

func newTestLimiter(store ports.RateLimitStore) *RateLimitService {
	return NewRateLimitService(store, zerolog.Nop())
}

func TestRateLimitAdmitsUpToMaxThenRejects(t *testing.T) {
	store := newMemLimitStore()
	limiter := newTestLimiter(store)
	ctx := context.Background()

	for i := 0; i < AuthLimit.MaxRequests; i++ {
		d := limiter.Check(ctx, AuthLimit, "10.0.0.1")
		if !d.Allowed {
			t.Fatalf("request %d: expected admit, got reject", i+1)
		}
	}

	d := limiter.Check(ctx, AuthLimit, "10.0.0.1")
	if d.Allowed {
		t.Fatal("expected reject after limit exhausted")
	}
	if d.RetryAfter != AuthLimit.Window {
		t.Fatalf("RetryAfter = %v, want %v", d.RetryAfter, AuthLimit.Window)
	}
}

func TestRateLimitWindowExpiry(t *testing.T) {
	store := newMemLimitStore()
	limiter := newTestLimiter(store)
	ctx := context.Background()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	for i := 0; i < AuthLimit.MaxRequests; i++ {
		if d := limiter.Check(ctx, AuthLimit, "1.2.3.4"); !d.Allowed {
			t.Fatalf("request %d: expected admit", i+1)
		}
	}
	if d := limiter.Check(ctx, AuthLimit, "1.2.3.4"); d.Allowed {
		t.Fatal("expected reject inside window")
	}

	// Advance past the window: earlier records expire and requests flow again.
	current = current.Add(AuthLimit.Window + time.Second)
	if d := limiter.Check(ctx, AuthLimit, "1.2.3.4"); !d.Allowed {
		t.Fatal("expected admit after window expiry")
	}
}

func TestRateLimitCallersAreIsolated(t *testing.T) {
	store := newMemLimitStore()
	limiter := newTestLimiter(store)
	ctx := context.Background()

	for i := 0; i < AuthLimit.MaxRequests; i++ {
		limiter.Check(ctx, AuthLimit, "10.0.0.1")
	}
	if d := limiter.Check(ctx, AuthLimit, "10.0.0.1"); d.Allowed {
		t.Fatal("expected first caller to be limited")
	}

	if d := limiter.Check(ctx, AuthLimit, "10.0.0.2"); !d.Allowed {
		t.Fatal("expected second caller to be unaffected")
	}
}

func TestRateLimitPrefixesAreIsolated(t *testing.T) {
	store := newMemLimitStore()
	limiter := newTestLimiter(store)
	ctx := context.Background()

	for i := 0; i < AuthLimit.MaxRequests; i++ {
		limiter.Check(ctx, AuthLimit, "10.0.0.1")
	}
	if d := limiter.Check(ctx, AuthLimit, "10.0.0.1"); d.Allowed {
		t.Fatal("expected auth limit to be exhausted")
	}

	// Same caller under the api prefix counts separately.
	if d := limiter.Check(ctx, APILimit, "10.0.0.1"); !d.Allowed {
		t.Fatal("expected api limit to be untouched")
	}
}

func TestRateLimitFailsOpenOnStoreErrors(t *testing.T) {
	storeErr := errors.New("store down")

	tests := []struct {
		name  string
		setup func(*memLimitStore)
	}{
		{"purge error", func(s *memLimitStore) { s.purgeErr = storeErr }},
		{"count error", func(s *memLimitStore) { s.countErr = storeErr }},
		{"record error", func(s *memLimitStore) { s.recordErr = storeErr }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemLimitStore()
			tt.setup(store)
			limiter := newTestLimiter(store)

			// Well past the limit: every request must still be admitted.
			for i := 0; i < AuthLimit.MaxRequests*2; i++ {
				if d := limiter.Check(context.Background(), AuthLimit, "10.0.0.1"); !d.Allowed {
					t.Fatalf("request %d: expected fail-open admit", i+1)
				}
			}
		})
	}
}

func TestRateLimitPurgesExpiredRecords(t *testing.T) {
	store := newMemLimitStore()
	limiter := newTestLimiter(store)
	ctx := context.Background()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	limiter.Check(ctx, AuthLimit, "10.0.0.1")
	limiter.Check(ctx, AuthLimit, "10.0.0.1")

	current = current.Add(AuthLimit.Window + time.Second)
	limiter.Check(ctx, AuthLimit, "10.0.0.1")

	// The two expired records are gone; only the fresh one remains.
	if got := len(store.records["auth:10.0.0.1"]); got != 1 {
		t.Fatalf("stored records = %d, want 1", got)
	}
}

func TestRateLimitConfigs(t *testing.T) {
	if AuthLimit.MaxRequests != 5 || AuthLimit.Window != 60*time.Second || AuthLimit.Prefix != "auth" {
		t.Fatalf("unexpected auth limit: %+v", AuthLimit)
	}
	if APILimit.MaxRequests != 30 || APILimit.Window != 60*time.Second || APILimit.Prefix != "api" {
		t.Fatalf("unexpected api limit: %+v", APILimit)
	}
}

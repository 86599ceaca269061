package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// scriptedLimiter returns a fixed decision and records the caller id it was
// asked about.
type scriptedLimiter struct {
	decision ports.Decision
	callerID string
	limit    ports.Limit
}

func (l *scriptedLimiter) Check(_ context.Context, limit ports.Limit, callerID string) ports.Decision {
	l.limit = limit
	l.callerID = callerID
	return l.decision
}

var testLimit = ports.Limit{MaxRequests: 5, Window: 60 * time.Second, Prefix: "auth"}

func runRateLimited(t *testing.T, limiter ports.RateLimiter, header http.Header) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RateLimit(limiter, testLimit)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, h(c)
}

func TestRateLimitAdmits(t *testing.T) {
	limiter := &scriptedLimiter{decision: ports.Decision{Allowed: true}}

	rec, err := runRateLimited(t, limiter, nil)
	if err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if limiter.limit.Prefix != "auth" {
		t.Errorf("limit prefix = %q, want auth", limiter.limit.Prefix)
	}
}

func TestRateLimitRejectsWithRetryAfter(t *testing.T) {
	limiter := &scriptedLimiter{decision: ports.Decision{Allowed: false, RetryAfter: 60 * time.Second}}

	rec, err := runRateLimited(t, limiter, nil)
	if err == nil {
		t.Fatal("expected error for rejected request")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("err = %v, want 429 HTTPError", err)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want 60", got)
	}
}

func TestClientIPExtraction(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		want   string
	}{
		{
			name:   "forwarded-for single",
			header: map[string]string{"X-Forwarded-For": "203.0.113.7"},
			want:   "203.0.113.7",
		},
		{
			name:   "forwarded-for chain uses first hop",
			header: map[string]string{"X-Forwarded-For": "10.0.0.1, 70.41.3.18, 150.172.238.178"},
			want:   "10.0.0.1",
		},
		{
			name:   "forwarded-for with spaces",
			header: map[string]string{"X-Forwarded-For": "  10.0.0.1 , 70.41.3.18"},
			want:   "10.0.0.1",
		},
		{
			name:   "real-ip fallback",
			header: map[string]string{"X-Real-IP": "198.51.100.9"},
			want:   "198.51.100.9",
		},
		{
			name: "forwarded-for wins over real-ip",
			header: map[string]string{
				"X-Forwarded-For": "203.0.113.7",
				"X-Real-IP":       "198.51.100.9",
			},
			want: "203.0.113.7",
		},
		{
			name:   "no headers",
			header: nil,
			want:   "127.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimitUsesExtractedCallerID(t *testing.T) {
	limiter := &scriptedLimiter{decision: ports.Decision{Allowed: true}}

	header := http.Header{}
	header.Set("X-Forwarded-For", "10.0.0.1, 70.41.3.18")
	if _, err := runRateLimited(t, limiter, header); err != nil {
		t.Fatalf("handler err: %v", err)
	}

	if limiter.callerID != "10.0.0.1" {
		t.Errorf("callerID = %q, want 10.0.0.1", limiter.callerID)
	}
}

package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// Subject is the raw authenticated identity produced by the session
// middleware before any application records are consulted.
type Subject struct {
	UserID string
	Email  string
}

// IdentityResolver turns a session subject into a fully typed Principal by
// looking up the account record and its role-specific profile.
//
// Failure contract: a subject with no users record yields
// domain.ErrProfileMissing; any unexpected store fault is wrapped in
// domain.ErrInternal. A raw dependency error never escapes Resolve.
type IdentityResolver interface {
	Resolve(ctx context.Context, subject Subject) (*domain.Principal, error)
}

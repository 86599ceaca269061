package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// IdentityService resolves a session subject into a typed Principal. It is
// the single place that answers "who is making this request, and what are
// they allowed to touch".
type IdentityService struct {
	users      ports.UserRepository
	creators   ports.CreatorRepository
	businesses ports.BusinessRepository
	log        zerolog.Logger
}

func NewIdentityService(
	users ports.UserRepository,
	creators ports.CreatorRepository,
	businesses ports.BusinessRepository,
	log zerolog.Logger,
) *IdentityService {
	return &IdentityService{
		users:      users,
		creators:   creators,
		businesses: businesses,
		log:        log,
	}
}

// Resolve builds a fresh Principal for the subject.
//
//  1. Look up the users record by subject id. Missing means the subject
//     exists in the identity store but has no application profile, an
//     inconsistent state that must never occur in steady operation, handled
//     defensively as domain.ErrProfileMissing.
//  2. Attach the role-specific profile id: creators get CreatorID,
//     businesses get BusinessID, admins get neither.
//
// Any other fault is wrapped in domain.ErrInternal so callers always receive
// either a Principal or a pre-formed rejection, never a raw store error.
func (s *IdentityService) Resolve(ctx context.Context, subject ports.Subject) (*domain.Principal, error) {
	if subject.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, subject.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("user_id", subject.UserID).Msg("session subject has no users record")
			return nil, domain.ErrProfileMissing
		}
		return nil, fmt.Errorf("%w: resolve identity: %v", domain.ErrInternal, err)
	}

	principal := &domain.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	switch user.Role {
	case domain.RoleCreator:
		profile, err := s.creators.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, domain.ErrCreatorNotFound) {
				return nil, domain.ErrProfileMissing
			}
			return nil, fmt.Errorf("%w: resolve creator profile: %v", domain.ErrInternal, err)
		}
		principal.CreatorID = profile.ID
	case domain.RoleBusiness:
		profile, err := s.businesses.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, domain.ErrBusinessNotFound) {
				return nil, domain.ErrProfileMissing
			}
			return nil, fmt.Errorf("%w: resolve business profile: %v", domain.ErrInternal, err)
		}
		principal.BusinessID = profile.ID
	}

	return principal, nil
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

type BusinessService struct {
	repo ports.BusinessRepository
	log  zerolog.Logger
}

func NewBusinessService(repo ports.BusinessRepository, log zerolog.Logger) *BusinessService {
	return &BusinessService{repo: repo, log: log}
}

func (s *BusinessService) GetOwn(ctx context.Context, principal *domain.Principal) (*domain.BusinessProfile, error) {
	if !principal.IsBusiness() {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, principal.BusinessID)
}

func (s *BusinessService) UpdateOwn(ctx context.Context, principal *domain.Principal, input ports.UpdateBusinessInput) (*domain.BusinessProfile, error) {
	if !principal.IsBusiness() {
		return nil, domain.ErrForbidden
	}

	profile, err := s.repo.FindByID(ctx, principal.BusinessID)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != "" {
		profile.CompanyName = input.CompanyName
	}
	profile.Website = input.Website
	profile.Industry = input.Industry
	profile.About = input.About
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Info().Str("business_id", profile.ID).Msg("business profile updated")
	return profile, nil
}

func (s *BusinessService) GetPublic(ctx context.Context, id string) (*domain.BusinessProfile, error) {
	return s.repo.FindByID(ctx, id)
}

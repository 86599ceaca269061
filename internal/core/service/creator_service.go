package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// ProfileCache caches public profile reads. A nil implementation is never
// passed; use a no-op when caching is disabled.
type ProfileCache interface {
	GetCreator(ctx context.Context, id string) (*domain.CreatorProfile, bool)
	SetCreator(ctx context.Context, profile *domain.CreatorProfile)
	InvalidateCreator(ctx context.Context, id string)
}

type CreatorService struct {
	repo  ports.CreatorRepository
	cache ProfileCache
	log   zerolog.Logger
}

func NewCreatorService(repo ports.CreatorRepository, cache ProfileCache, log zerolog.Logger) *CreatorService {
	return &CreatorService{repo: repo, cache: cache, log: log}
}

func (s *CreatorService) GetOwn(ctx context.Context, principal *domain.Principal) (*domain.CreatorProfile, error) {
	if !principal.IsCreator() {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, principal.CreatorID)
}

func (s *CreatorService) UpdateOwn(ctx context.Context, principal *domain.Principal, input ports.UpdateCreatorInput) (*domain.CreatorProfile, error) {
	if !principal.IsCreator() {
		return nil, domain.ErrForbidden
	}

	profile, err := s.repo.FindByID(ctx, principal.CreatorID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != "" {
		profile.DisplayName = input.DisplayName
	}
	profile.Bio = input.Bio
	profile.Niches = input.Niches
	profile.PortfolioURL = input.PortfolioURL
	if input.RatePerVideo > 0 {
		profile.RatePerVideo = input.RatePerVideo
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.cache.InvalidateCreator(ctx, profile.ID)
	s.log.Info().Str("creator_id", profile.ID).Msg("creator profile updated")
	return profile, nil
}

func (s *CreatorService) GetPublic(ctx context.Context, id string) (*domain.CreatorProfile, error) {
	if cached, ok := s.cache.GetCreator(ctx, id); ok {
		return cached, nil
	}

	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetCreator(ctx, profile)
	return profile, nil
}

func (s *CreatorService) List(ctx context.Context, filter ports.CreatorFilter) (*ports.ListCreatorsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListCreatorsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

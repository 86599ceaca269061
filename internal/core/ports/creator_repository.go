package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// CreatorFilter narrows List results.
type CreatorFilter struct {
	Niche  string
	Search string
	Page   int
	Limit  int
}

// CreatorRepository defines persistence for creator profiles.
type CreatorRepository interface {
	Create(ctx context.Context, profile *domain.CreatorProfile) (*domain.CreatorProfile, error)
	FindByID(ctx context.Context, id string) (*domain.CreatorProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.CreatorProfile, error)
	Update(ctx context.Context, profile *domain.CreatorProfile) error
	List(ctx context.Context, filter CreatorFilter) ([]domain.CreatorProfile, int64, error)
	// UpdateRating replaces the aggregate rating fields in one write.
	UpdateRating(ctx context.Context, id string, avgRating float64, reviewCount int) error
}

package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// UpdateCreatorInput carries the owner-editable profile fields.
type UpdateCreatorInput struct {
	DisplayName  string
	Bio          string
	Niches       []string
	PortfolioURL string
	RatePerVideo float64
}

// ListCreatorsResult is the paginated list view.
type ListCreatorsResult struct {
	Items      []domain.CreatorProfile
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CreatorService defines use-case operations on creator profiles.
// Ownership rules: only the owning principal (or an admin) may update a
// profile; reads of public profiles are open to any authenticated caller.
type CreatorService interface {
	GetOwn(ctx context.Context, principal *domain.Principal) (*domain.CreatorProfile, error)
	UpdateOwn(ctx context.Context, principal *domain.Principal, input UpdateCreatorInput) (*domain.CreatorProfile, error)
	GetPublic(ctx context.Context, id string) (*domain.CreatorProfile, error)
	List(ctx context.Context, filter CreatorFilter) (*ListCreatorsResult, error)
}

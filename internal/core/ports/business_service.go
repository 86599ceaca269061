package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// UpdateBusinessInput carries the owner-editable company fields.
type UpdateBusinessInput struct {
	CompanyName string
	Website     string
	Industry    string
	About       string
}

// BusinessService defines use-case operations on business profiles.
type BusinessService interface {
	GetOwn(ctx context.Context, principal *domain.Principal) (*domain.BusinessProfile, error)
	UpdateOwn(ctx context.Context, principal *domain.Principal, input UpdateBusinessInput) (*domain.BusinessProfile, error)
	GetPublic(ctx context.Context, id string) (*domain.BusinessProfile, error)
}

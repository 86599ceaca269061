package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// BusinessRepository defines persistence for business profiles.
type BusinessRepository interface {
	Create(ctx context.Context, profile *domain.BusinessProfile) (*domain.BusinessProfile, error)
	FindByID(ctx context.Context, id string) (*domain.BusinessProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.BusinessProfile, error)
	FindByStripeCustomer(ctx context.Context, customerID string) (*domain.BusinessProfile, error)
	Update(ctx context.Context, profile *domain.BusinessProfile) error
	SetStripeCustomer(ctx context.Context, id, customerID string) error
	// SetPlan updates the billing plan and subscription status mirrored from
	// the payment provider.
	SetPlan(ctx context.Context, id, plan, subscriptionStatus string) error
}

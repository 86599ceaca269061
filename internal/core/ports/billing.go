package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// WebhookEvent is the minimal view of a payment-provider event the billing
// service acts on.
type WebhookEvent struct {
	Type       string
	CustomerID string
}

// PaymentGateway abstracts the hosted payment provider (Stripe).
type PaymentGateway interface {
	// EnsureCustomer returns the provider customer id for a business,
	// creating one when none exists yet.
	EnsureCustomer(ctx context.Context, email, businessID string) (string, error)
	CreateCheckoutSession(ctx context.Context, customerID, priceID string) (string, error)
	CreatePortalSession(ctx context.Context, customerID string) (string, error)
	// ParseWebhook verifies the signature and decodes the event payload.
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// BillingService defines the subscription billing use cases available to
// business principals.
type BillingService interface {
	CreateCheckoutSession(ctx context.Context, principal *domain.Principal) (string, error)
	CreatePortalSession(ctx context.Context, principal *domain.Principal) (string, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// BillingService glues business profiles to the hosted payment provider.
// The provider owns the subscription state machine; this service only
// mirrors plan changes reported through webhooks.
type BillingService struct {
	businesses ports.BusinessRepository
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
	priceIDPro string
	log        zerolog.Logger
}

func NewBillingService(
	businesses ports.BusinessRepository,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	priceIDPro string,
	log zerolog.Logger,
) *BillingService {
	return &BillingService{
		businesses: businesses,
		gateway:    gateway,
		notifier:   notifier,
		priceIDPro: priceIDPro,
		log:        log,
	}
}

// CreateCheckoutSession starts a subscription checkout for the acting
// business, creating the provider customer on first use.
func (s *BillingService) CreateCheckoutSession(ctx context.Context, principal *domain.Principal) (string, error) {
	customerID, err := s.ensureCustomer(ctx, principal)
	if err != nil {
		return "", err
	}

	url, err := s.gateway.CreateCheckoutSession(ctx, customerID, s.priceIDPro)
	if err != nil {
		return "", fmt.Errorf("%w: create checkout session: %v", domain.ErrInternal, err)
	}
	return url, nil
}

// CreatePortalSession opens the provider's customer portal for managing an
// existing subscription.
func (s *BillingService) CreatePortalSession(ctx context.Context, principal *domain.Principal) (string, error) {
	customerID, err := s.ensureCustomer(ctx, principal)
	if err != nil {
		return "", err
	}

	url, err := s.gateway.CreatePortalSession(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("%w: create portal session: %v", domain.ErrInternal, err)
	}
	return url, nil
}

func (s *BillingService) ensureCustomer(ctx context.Context, principal *domain.Principal) (string, error) {
	if !principal.IsBusiness() {
		return "", domain.ErrForbidden
	}

	profile, err := s.businesses.FindByID(ctx, principal.BusinessID)
	if err != nil {
		return "", err
	}
	if profile.StripeCustomerID != "" {
		return profile.StripeCustomerID, nil
	}

	customerID, err := s.gateway.EnsureCustomer(ctx, principal.Email, profile.ID)
	if err != nil {
		return "", fmt.Errorf("%w: ensure customer: %v", domain.ErrInternal, err)
	}

	if err := s.businesses.SetStripeCustomer(ctx, profile.ID, customerID); err != nil {
		return "", err
	}

	s.log.Info().Str("business_id", profile.ID).Msg("stripe customer created")
	return customerID, nil
}

// HandleWebhook verifies and applies a provider event. Unhandled event types
// are acknowledged and ignored.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}

	switch event.Type {
	case "checkout.session.completed":
		return s.applyPlanChange(ctx, event.CustomerID, domain.PlanPro, domain.SubscriptionActive)
	case "customer.subscription.deleted":
		return s.applyPlanChange(ctx, event.CustomerID, domain.PlanFree, domain.SubscriptionCanceled)
	default:
		s.log.Debug().Str("type", event.Type).Msg("ignoring webhook event")
		return nil
	}
}

func (s *BillingService) applyPlanChange(ctx context.Context, customerID, plan, status string) error {
	if customerID == "" {
		return fmt.Errorf("%w: webhook event missing customer id", domain.ErrInternal)
	}

	profile, err := s.businesses.FindByStripeCustomer(ctx, customerID)
	if err != nil {
		return err
	}

	if err := s.businesses.SetPlan(ctx, profile.ID, plan, status); err != nil {
		return err
	}

	s.notifier.Enqueue(ports.NotificationInput{
		UserID:  profile.UserID,
		Kind:    domain.NotificationPlanChanged,
		Subject: "Your subscription changed",
		Body:    fmt.Sprintf("Your plan is now %q.", plan),
	})

	s.log.Info().Str("business_id", profile.ID).Str("plan", plan).Msg("plan updated from webhook")
	return nil
}

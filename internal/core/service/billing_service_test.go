package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

type billingFixture struct {
	svc        *BillingService
	businesses *stubBusinessRepo
	gateway    *stubGateway
	notifier   *captureNotifier

	profile *domain.BusinessProfile
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()

	f := &billingFixture{
		businesses: newStubBusinessRepo(),
		gateway:    &stubGateway{checkoutURL: "https://pay.example/checkout", portalURL: "https://pay.example/portal"},
		notifier:   &captureNotifier{},
	}
	f.svc = NewBillingService(f.businesses, f.gateway, f.notifier, "price_pro", zerolog.Nop())

	f.profile, _ = f.businesses.Create(context.Background(), &domain.BusinessProfile{
		UserID:      "u-biz",
		CompanyName: "Acme",
		Plan:        domain.PlanFree,
	})
	return f
}

func (f *billingFixture) principal() *domain.Principal {
	return &domain.Principal{
		UserID:     f.profile.UserID,
		Email:      "acme@example.com",
		Role:       domain.RoleBusiness,
		BusinessID: f.profile.ID,
	}
}

func TestCheckoutCreatesCustomerOnce(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	url, err := f.svc.CreateCheckoutSession(ctx, f.principal())
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if url != "https://pay.example/checkout" {
		t.Errorf("url = %q", url)
	}

	// Second call reuses the stored customer.
	if _, err := f.svc.CreateCheckoutSession(ctx, f.principal()); err != nil {
		t.Fatalf("second CreateCheckoutSession: %v", err)
	}
	if f.gateway.customers != 1 {
		t.Errorf("customers created = %d, want 1", f.gateway.customers)
	}

	stored, _ := f.businesses.FindByID(ctx, f.profile.ID)
	if stored.StripeCustomerID == "" {
		t.Error("customer id not persisted on profile")
	}
}

func TestCheckoutRequiresBusinessRole(t *testing.T) {
	f := newBillingFixture(t)

	// Billing is bound to a business profile; creators and admins have none.
	principals := []*domain.Principal{
		{UserID: "u2", Role: domain.RoleCreator, CreatorID: "c1"},
		{UserID: "u9", Role: domain.RoleAdmin},
	}
	for _, p := range principals {
		_, err := f.svc.CreateCheckoutSession(context.Background(), p)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s: err = %v, want ErrForbidden", p.Role, err)
		}
	}
}

func TestWebhookCheckoutCompletedUpgradesPlan(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CreateCheckoutSession(ctx, f.principal()); err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	stored, _ := f.businesses.FindByID(ctx, f.profile.ID)

	f.gateway.event = &ports.WebhookEvent{
		Type:       "checkout.session.completed",
		CustomerID: stored.StripeCustomerID,
	}
	if err := f.svc.HandleWebhook(ctx, []byte("{}"), "sig"); err != nil {
		t.Fatalf("HandleWebhook: %v", err)
	}

	stored, _ = f.businesses.FindByID(ctx, f.profile.ID)
	if stored.Plan != domain.PlanPro {
		t.Errorf("Plan = %q, want pro", stored.Plan)
	}
	if stored.SubscriptionStatus != domain.SubscriptionActive {
		t.Errorf("SubscriptionStatus = %q, want active", stored.SubscriptionStatus)
	}

	if len(f.notifier.inputs) != 1 || f.notifier.inputs[0].Kind != domain.NotificationPlanChanged {
		t.Errorf("expected one plan_changed notification, got %+v", f.notifier.inputs)
	}
}

func TestWebhookSubscriptionDeletedDowngradesPlan(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CreateCheckoutSession(ctx, f.principal()); err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	stored, _ := f.businesses.FindByID(ctx, f.profile.ID)

	f.gateway.event = &ports.WebhookEvent{
		Type:       "customer.subscription.deleted",
		CustomerID: stored.StripeCustomerID,
	}
	if err := f.svc.HandleWebhook(ctx, []byte("{}"), "sig"); err != nil {
		t.Fatalf("HandleWebhook: %v", err)
	}

	stored, _ = f.businesses.FindByID(ctx, f.profile.ID)
	if stored.Plan != domain.PlanFree {
		t.Errorf("Plan = %q, want free", stored.Plan)
	}
	if stored.SubscriptionStatus != domain.SubscriptionCanceled {
		t.Errorf("SubscriptionStatus = %q, want canceled", stored.SubscriptionStatus)
	}
}

func TestWebhookIgnoresUnhandledEvents(t *testing.T) {
	f := newBillingFixture(t)

	f.gateway.event = &ports.WebhookEvent{Type: "invoice.paid"}
	if err := f.svc.HandleWebhook(context.Background(), []byte("{}"), "sig"); err != nil {
		t.Fatalf("HandleWebhook: %v", err)
	}
	if len(f.notifier.inputs) != 0 {
		t.Errorf("unexpected notifications: %+v", f.notifier.inputs)
	}
}

func TestWebhookBadSignature(t *testing.T) {
	f := newBillingFixture(t)

	f.gateway.parseErr = fmt.Errorf("%w: signature: no valid signature", domain.ErrInvalidWebhook)
	err := f.svc.HandleWebhook(context.Background(), []byte("{}"), "bad")
	if !errors.Is(err, domain.ErrInvalidWebhook) {
		t.Fatalf("err = %v, want ErrInvalidWebhook", err)
	}
}

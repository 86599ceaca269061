// Package payments implements the ports.PaymentGateway against Stripe.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	portalsession "github.com/stripe/stripe-go/v79/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// Gateway talks to Stripe. The stripe-go client is configured globally via
// stripe.Key; Init must run once before any gateway call.
type Gateway struct {
	webhookSecret string
	frontendURL   string
}

// Init sets the global Stripe API key.
func Init(secretKey string) {
	stripe.Key = secretKey
}

func NewGateway(webhookSecret, frontendURL string) *Gateway {
	return &Gateway{
		webhookSecret: webhookSecret,
		frontendURL:   strings.TrimRight(frontendURL, "/"),
	}
}

// EnsureCustomer creates a Stripe customer carrying the business id in
// metadata so webhook handlers can correlate events back to the profile.
func (g *Gateway) EnsureCustomer(_ context.Context, email, businessID string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.AddMetadata("business_id", businessID)

	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create customer: %w", err)
	}
	return cust.ID, nil
}

func (g *Gateway) CreateCheckoutSession(_ context.Context, customerID, priceID string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer: stripe.String(customerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.frontendURL + "/billing/success"),
		CancelURL:  stripe.String(g.frontendURL + "/billing/cancel"),
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout session: %w", err)
	}
	return sess.URL, nil
}

func (g *Gateway) CreatePortalSession(_ context.Context, customerID string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(g.frontendURL + "/billing"),
	}

	sess, err := portalsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe portal session: %w", err)
	}
	return sess.URL, nil
}

// ParseWebhook verifies the event signature and extracts the customer id for
// the event types the billing service consumes. Verification and decode
// failures report ErrInvalidWebhook so the delivery is rejected as a client
// error instead of a retryable server fault.
func (g *Gateway) ParseWebhook(payload []byte, signature string) (*ports.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: signature: %v", domain.ErrInvalidWebhook, err)
	}

	out := &ports.WebhookEvent{Type: string(event.Type)}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("%w: session: %v", domain.ErrInvalidWebhook, err)
		}
		if sess.Customer != nil {
			out.CustomerID = sess.Customer.ID
		}
	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("%w: subscription: %v", domain.ErrInvalidWebhook, err)
		}
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
	}

	return out, nil
}

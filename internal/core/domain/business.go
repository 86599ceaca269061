package domain

import (
	"errors"
	"time"
)

var (
	ErrBusinessNotFound = errors.New("business profile not found")

	// ErrInvalidWebhook marks a provider webhook that failed signature
	// verification or carried an undecodable payload. Retrying cannot fix
	// either, so the delivery is rejected as a client error.
	ErrInvalidWebhook = errors.New("invalid webhook payload")
)

const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Subscription lifecycle states mirrored from the payment provider.
const (
	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
	SubscriptionNone     = ""
)

// BusinessProfile is the company profile owned 1:1 by a user with the
// business role. Billing state lives here: the Stripe customer id is created
// lazily on first checkout, and Plan tracks the provider's subscription via
// webhook events.
type BusinessProfile struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	UserID             string    `json:"user_id" bson:"user_id"`
	CompanyName        string    `json:"company_name" bson:"company_name"`
	Website            string    `json:"website,omitempty" bson:"website,omitempty"`
	Industry           string    `json:"industry,omitempty" bson:"industry,omitempty"`
	About              string    `json:"about,omitempty" bson:"about,omitempty"`
	Plan               string    `json:"plan" bson:"plan"`
	SubscriptionStatus string    `json:"subscription_status,omitempty" bson:"subscription_status,omitempty"`
	StripeCustomerID   string    `json:"-" bson:"stripe_customer_id,omitempty"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/api/metrics"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// maxWebhookBody caps webhook payload reads. Stripe events are small; the
// cap guards against oversized bodies on the unauthenticated endpoint.
const maxWebhookBody = 64 << 10

// BillingHandler exposes subscription billing endpoints.
type BillingHandler struct {
	billing ports.BillingService
}

func NewBillingHandler(billing ports.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

type sessionResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession godoc
// @Summary      Start a Pro subscription checkout
// @Description  Returns a hosted checkout URL for the Pro plan.
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/billing/checkout [post]
func (h *BillingHandler) CreateCheckoutSession(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	url, err := h.billing.CreateCheckoutSession(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{URL: url})
}

// CreatePortalSession godoc
// @Summary      Open the billing portal
// @Description  Returns a hosted portal URL where the business manages its subscription.
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/billing/portal [post]
func (h *BillingHandler) CreatePortalSession(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	url, err := h.billing.CreatePortalSession(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{URL: url})
}

// Webhook godoc
// @Summary      Payment provider webhook
// @Description  Signature-verified event sink; not called by API clients.
// @Tags         billing
// @Accept       json
// @Success      200
// @Failure      400  {object}  errorResponse
// @Router       /api/v1/webhooks/stripe [post]
func (h *BillingHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable payload")
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if err := h.billing.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		// Any non-2xx makes the provider retry delivery.
		metrics.WebhookEventsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.WebhookEventsTotal.WithLabelValues("applied").Inc()
	return c.NoContent(http.StatusOK)
}

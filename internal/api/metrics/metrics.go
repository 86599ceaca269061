// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// RegistrationsTotal counts new accounts by role.
// Label:
//   - role: "creator" or "business"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// RateLimitDecisionsTotal counts limiter decisions.
// Labels:
//   - limiter: the limit prefix ("auth", "api")
//   - result:  "admit" or "reject"
var RateLimitDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_decisions_total",
		Help:      "Total number of rate limit checks, by limiter and result.",
	},
	[]string{"limiter", "result"},
)

// JobsCreatedTotal counts job postings by content type.
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created, by content type.",
	},
	[]string{"content_type"},
)

// ReviewsSubmittedTotal counts submitted reviews by star rating.
var ReviewsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews submitted, by rating.",
	},
	[]string{"rating"},
)

// WebhookEventsTotal counts billing webhook deliveries by outcome.
// Label:
//   - result: "applied" or "rejected"
var WebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Total number of billing webhook deliveries, by result.",
	},
	[]string{"result"},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the portfolio API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ContactMessagesTotal counts persisted contact-form submissions.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages persisted.",
	},
)

// ContactEmailFailuresTotal counts failed contact emails. The submission
// itself still succeeds; this counter is the only operational signal.
// Label:
//   - kind: "notification" or "auto_reply"
var ContactEmailFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_email_failures_total",
		Help:      "Total number of contact emails that failed to send.",
	},
	[]string{"kind"},
)

// MediaUploadsTotal counts stored media objects.
// Label:
//   - area: "profile", "cv", "certificates", or "experience"
var MediaUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_uploads_total",
		Help:      "Total number of media files uploaded, by area.",
	},
	[]string{"area"},
)

// ContentCacheTotal counts read-through cache lookups on public listings.
// Label:
//   - result: "hit" or "miss"
var ContentCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_cache_total",
		Help:      "Total number of content cache lookups, by result.",
	},
	[]string{"result"},
)

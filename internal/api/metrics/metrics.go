// Package metrics defines and registers all custom Prometheus metrics for
// the forecast platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register themselves with the default registry at init time; the
// router exposes them alongside the echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coderhive"

// ── Identity metrics ──────────────────────────────────────────────────────────

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role stored on the new identity ("reseller" / "manufacturer")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of identities registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionEventsTotal counts published session events.
// Label:
//   - type: "login" or "logout"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session events published, by type.",
	},
	[]string{"type"},
)

// SessionCacheReadsTotal counts session cache lookups.
// Label:
//   - result: "hit", "miss", or "corrupt" (unparseable entry treated as miss)
var SessionCacheReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_cache_reads_total",
		Help:      "Total number of session cache reads, by result.",
	},
	[]string{"result"},
)

// ── Quote metrics ─────────────────────────────────────────────────────────────

// QuoteRequestDuration measures end-to-end latency of quote preparation
// calls against the external quote service.
// Label:
//   - outcome: "ok" or "error"
var QuoteRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_request_duration_seconds",
		Help:      "Duration of quotation requests to the quote service.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

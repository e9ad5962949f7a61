// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Search metrics ────────────────────────────────────────────────────────────

// SearchesTotal counts executed search queries.
// Label:
//   - entity: "consultants" or "projects"
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of search queries executed, by entity.",
	},
	[]string{"entity"},
)

// SearchDuration measures the full filter+sort+paginate evaluation of one
// search query.
// Label:
//   - entity: "consultants" or "projects"
var SearchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of query evaluation from collection read to page slice.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity"},
)

// ── Collection metrics ────────────────────────────────────────────────────────

// EntitiesCreatedTotal counts successful entity creations.
// Label:
//   - collection: "consultants", "projects", or "inquiries"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by collection.",
	},
	[]string{"collection"},
)

// ValidationFailuresTotal counts form submissions rejected by the validation
// layer.
// Label:
//   - form: "consultant", "project", or "inquiry"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of form submissions rejected with field errors.",
	},
	[]string{"form"},
)

// ── Seed metrics ──────────────────────────────────────────────────────────────

// SeedRunsTotal counts seed routine outcomes.
// Label:
//   - result: "seeded" (fixtures applied), "skipped" (version marker matched),
//     or "error" (fixture fetch failed)
var SeedRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Total number of seed routine invocations, by outcome.",
	},
	[]string{"result"},
)

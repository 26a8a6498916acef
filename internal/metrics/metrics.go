// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - Preference settings and browsing-history ledger activity
// - Recommendation serving (source, affinity, staleness)
// - Remote catalog circuit breaker state
// - API endpoint latency and throughput

var (
	// Preference Settings Metrics
	SettingsUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "personalization_settings_updates_total",
			Help: "Total number of preference settings updates",
		},
	)

	// Browsing History Ledger Metrics
	ViewsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "personalization_views_recorded_total",
			Help: "Total number of product views written to the ledger",
		},
	)

	ViewsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "personalization_views_skipped_total",
			Help: "Total number of product views dropped because tracking is disabled",
		},
	)

	LedgerSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "personalization_ledger_entries",
			Help: "Current number of entries in the browsing history ledger",
		},
	)

	LedgerEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "personalization_ledger_evictions_total",
			Help: "Total number of entries evicted past the ledger capacity",
		},
	)

	PruneRemovals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "personalization_prune_removals_total",
			Help: "Total number of entries removed by retention pruning",
		},
	)

	HistoryClears = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "personalization_history_clears_total",
			Help: "Total number of full history wipes",
		},
		[]string{"reason"}, // "manual", "cascade"
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation responses served",
		},
		[]string{"source", "affinity"}, // source: "local", "remote", "stale"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_resolve_duration_seconds",
			Help:    "Time spent resolving a recommendation set",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a served recommendation set
func RecordRecommendation(source, affinity string, duration time.Duration) {
	RecommendationsServed.WithLabelValues(source, affinity).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

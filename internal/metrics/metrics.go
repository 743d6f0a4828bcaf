// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Inbound HTTP
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
			Help: "Current number of in-flight API requests",
		},
	)

	// Tautulli upstream
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tautulli_requests_total",
			Help: "Total number of Tautulli API calls",
		},
		[]string{"cmd", "outcome"}, // outcome: "success", "error"
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tautulli_request_duration_seconds",
			Help:    "Tautulli API call duration in seconds",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"cmd"},
	)

	UpstreamUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tautulli_up",
			Help: "Whether the last Tautulli probe succeeded (1) or failed (0)",
		},
	)

	// Circuit breaker
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

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Pipeline
	RecordsEnriched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_status_records_enriched_total",
			Help: "Total number of user records merged and rendered",
		},
	)

	LiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "user_status_live_sessions",
			Help: "Users with a live session in the most recent request",
		},
	)

	// Format settings
	SettingsOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "format_settings_operations_total",
			Help: "Total number of format settings store operations",
		},
		[]string{"store", "operation", "result"},
	)

	SettingsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "format_settings_cache_hits_total",
			Help: "Format settings reads served from cache",
		},
	)

	SettingsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "format_settings_cache_misses_total",
			Help: "Format settings reads that went to the store",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordUpstreamRequest records one Tautulli API call.
func RecordUpstreamRequest(cmd string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(cmd, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(cmd).Observe(duration.Seconds())
}

// RecordSettingsOperation records a load or save against a settings store.
func RecordSettingsOperation(store, operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	SettingsOperations.WithLabelValues(store, operation, result).Inc()
}

// SetUpstreamUp records the result of a Tautulli probe.
func SetUpstreamUp(up bool) {
	if up {
		UpstreamUp.Set(1)
		return
	}
	UpstreamUp.Set(0)
}

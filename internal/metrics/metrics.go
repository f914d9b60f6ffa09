// Moodreel - Emotion-Aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset Metrics
	DatasetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_dataset_load_total",
			Help: "Dataset loads by the origin that populated the store",
		},
		[]string{"origin"}, // "source", "snapshot", "fallback"
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodreel_dataset_load_duration_seconds",
			Help:    "Time spent fetching, parsing and materializing the dataset",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodreel_dataset_records",
			Help: "Number of movie records held by the dataset store",
		},
	)

	DatasetRowsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodreel_dataset_rows_skipped_total",
			Help: "Data rows skipped because their field count did not match the header",
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_recommend_requests_total",
			Help: "Recommendation requests by resolved emotion and scoring policy",
		},
		[]string{"emotion", "policy"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodreel_recommend_duration_seconds",
			Help:    "Time spent scoring and ranking one request",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
	)

	RecommendCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_recommend_cache_total",
			Help: "Recommendation response cache lookups",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Classifier Metrics
	ClassifierRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_classifier_requests_total",
			Help: "Requests sent to the emotion classification service",
		},
		[]string{"endpoint", "status"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodreel_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_circuit_breaker_requests_total",
			Help: "Requests through a circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodreel_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodreel_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodreel_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)
)

// RecordDatasetLoad records the outcome of the one-time dataset load.
func RecordDatasetLoad(origin string, records, skipped int, duration time.Duration) {
	DatasetLoads.WithLabelValues(origin).Inc()
	DatasetLoadDuration.Observe(duration.Seconds())
	DatasetRecords.Set(float64(records))
	if skipped > 0 {
		DatasetRowsSkipped.Add(float64(skipped))
	}
}

// RecordRecommendation records one scored request.
func RecordRecommendation(emotion, policy string, duration time.Duration) {
	RecommendRequests.WithLabelValues(emotion, policy).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordCacheLookup records a response cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendCache.WithLabelValues("hit").Inc()
		return
	}
	RecommendCache.WithLabelValues("miss").Inc()
}

// RecordClassifierRequest records a classifier call by endpoint and outcome.
func RecordClassifierRequest(endpoint, status string) {
	ClassifierRequests.WithLabelValues(endpoint, status).Inc()
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// Package metrics provides Prometheus metrics for the dignity service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SamplesComputedTotal tracks dignity samples computed by planet
	SamplesComputedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "graha",
			Subsystem: "sampler",
			Name:      "samples_computed_total",
			Help:      "Total number of dignity samples computed",
		},
		[]string{"planet"},
	)

	// CacheOperationsTotal tracks sample cache hits and misses
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "graha",
			Subsystem: "sampler",
			Name:      "cache_operations_total",
			Help:      "Total number of sample cache lookups by result",
		},
		[]string{"result"},
	)

	// ProviderErrorsTotal tracks position provider failures
	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "graha",
			Subsystem: "ephemeris",
			Name:      "provider_errors_total",
			Help:      "Total number of position provider failures",
		},
		[]string{"planet"},
	)

	// TrajectoryDuration tracks end-to-end trajectory computation time
	TrajectoryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "graha",
			Subsystem: "sampler",
			Name:      "trajectory_duration_seconds",
			Help:      "Duration of trajectory computations in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"planet"},
	)

	// ScoresServedTotal tracks single-score assessments served
	ScoresServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "graha",
			Subsystem: "engine",
			Name:      "scores_served_total",
			Help:      "Total number of dignity assessments served by support level",
		},
		[]string{"planet", "support"},
	)

	// KafkaMessagesPublished tracks events published to Kafka
	KafkaMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "graha",
			Subsystem: "kafka",
			Name:      "messages_published_total",
			Help:      "Total number of messages published to Kafka",
		},
		[]string{"topic", "status"},
	)
)

// RecordSample records a computed sample for a planet
func RecordSample(planet string) {
	SamplesComputedTotal.WithLabelValues(planet).Inc()
}

// RecordCacheHit records a sample cache hit
func RecordCacheHit() {
	CacheOperationsTotal.WithLabelValues("hit").Inc()
}

// RecordCacheMiss records a sample cache miss
func RecordCacheMiss() {
	CacheOperationsTotal.WithLabelValues("miss").Inc()
}

// RecordProviderError records a position provider failure
func RecordProviderError(planet string) {
	ProviderErrorsTotal.WithLabelValues(planet).Inc()
}

// RecordTrajectory records a trajectory computation
func RecordTrajectory(planet string, durationSeconds float64) {
	TrajectoryDuration.WithLabelValues(planet).Observe(durationSeconds)
}

// RecordScore records a served assessment
func RecordScore(planet, support string) {
	ScoresServedTotal.WithLabelValues(planet, support).Inc()
}

// RecordKafkaPublish records a Kafka publish operation
func RecordKafkaPublish(topic, status string) {
	KafkaMessagesPublished.WithLabelValues(topic, status).Inc()
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transport

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments API calls with Prometheus collectors. A nil *Metrics
// on HTTPClient disables instrumentation entirely.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Failures *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg and returns them. Registering
// the same collectors twice panics, so call this once per registry and pass
// a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "polly",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total completed API requests by operation and HTTP status code",
			},
			[]string{"operation", "code"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "polly",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "Histogram of API request latency by operation",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		Failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "polly",
				Subsystem: "client",
				Name:      "transport_failures_total",
				Help:      "Total network-level failures by operation and failure kind",
			},
			[]string{"operation", "kind"},
		),
	}
}

func (m *Metrics) observeRequest(operation string, code int, d time.Duration) {
	m.Requests.WithLabelValues(operation, strconv.Itoa(code)).Inc()
	m.Duration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) observeFailure(operation string, kind Kind) {
	m.Failures.WithLabelValues(operation, string(kind)).Inc()
}

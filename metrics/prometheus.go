// Package metrics provides a Prometheus-backed types.MetricsCollector.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/distribute/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are created and registered lazily on first use, so constructing a
// collector that is never used leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	distributions *prometheus.CounterVec
	errors        *prometheus.CounterVec
	groups        *prometheus.HistogramVec
	elements      *prometheus.HistogramVec
	duration      *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "distribute" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	d := distribute.NewDistributor[int](distribute.WithMetrics(metrics.NewPrometheus(reg, "")))
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "distribute"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.distributions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "distributions_total",
			Help:      "Total distribution calls by method and result (success, failure).",
		}, []string{"method", "result"})

		p.errors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "distribution_errors_total",
			Help:      "Total rejected distributions by method and error kind.",
		}, []string{"method", "kind"})

		p.groups = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "groups",
			Help:      "Number of groups produced per distribution.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1 .. 2048
		}, []string{"method"})

		p.elements = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "elements",
			Help:      "Number of input elements per distribution.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1 .. ~4M
		}, []string{"method"})

		p.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "duration_seconds",
			Help:      "Time spent sorting and partitioning in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us .. ~2.6s
		}, []string{"method"})

		p.distributions = registerOrExisting(p.reg, p.distributions)
		p.errors = registerOrExisting(p.reg, p.errors)
		p.groups = registerOrExisting(p.reg, p.groups)
		p.elements = registerOrExisting(p.reg, p.elements)
		p.duration = registerOrExisting(p.reg, p.duration)
	})
}

// registerOrExisting registers c, or returns the collector already registered
// under the same descriptor so several collectors can share one registry.
func registerOrExisting[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}

	return c
}

// RecordDistribution records a successful distribution.
func (p *PrometheusCollector) RecordDistribution(method string, elements, groups int, duration float64) {
	p.ensureRegistered()
	p.distributions.WithLabelValues(method, "success").Inc()
	p.groups.WithLabelValues(method).Observe(float64(groups))
	p.elements.WithLabelValues(method).Observe(float64(elements))
	p.duration.WithLabelValues(method).Observe(duration)
}

// RecordDistributionError records a rejected distribution.
func (p *PrometheusCollector) RecordDistributionError(method, kind string) {
	p.ensureRegistered()
	p.distributions.WithLabelValues(method, "failure").Inc()
	p.errors.WithLabelValues(method, kind).Inc()
}

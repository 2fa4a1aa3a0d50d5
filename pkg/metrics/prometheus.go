package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name unless overridden.
const DefaultNamespace = "expect"

// PrometheusMetrics implements Recorder with client_golang
// counters. Exposition is left to the host application.
type PrometheusMetrics struct {
	dispatches *prometheus.CounterVec
	failures   *prometheus.CounterVec
}

// NewPrometheusMetrics creates the counters and registers them on
// reg. An empty namespace uses DefaultNamespace. Counters that are
// already registered on reg are reused.
func NewPrometheusMetrics(
	reg prometheus.Registerer,
	namespace string,
) (*PrometheusMetrics, error) {
	if reg == nil {
		return nil, errors.New("metrics: nil registerer")
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	dispatches, err := registerCounter(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Values dispatched to a wrapper, by rule.",
		},
		[]string{"rule"},
	))
	if err != nil {
		return nil, err
	}

	failures, err := registerCounter(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failed checks, by error kind.",
		},
		[]string{"kind"},
	))
	if err != nil {
		return nil, err
	}

	return &PrometheusMetrics{
		dispatches: dispatches,
		failures:   failures,
	}, nil
}

func registerCounter(
	reg prometheus.Registerer,
	c *prometheus.CounterVec,
) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to register metric: %w", err)
	}
	return c, nil
}

// RecordDispatch increments the dispatch counter for rule.
func (m *PrometheusMetrics) RecordDispatch(rule string) {
	m.dispatches.WithLabelValues(rule).Inc()
}

// RecordFailure increments the failure counter for kind.
func (m *PrometheusMetrics) RecordFailure(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}

// Dispatches returns the dispatch counter vector.
func (m *PrometheusMetrics) Dispatches() *prometheus.CounterVec {
	return m.dispatches
}

// Failures returns the failure counter vector.
func (m *PrometheusMetrics) Failures() *prometheus.CounterVec {
	return m.failures
}

// Package metrics exposes Prometheus collectors for the classification engine
// and the HTTP API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "moodring"

// NewRegistry creates a Prometheus registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler returns an http.Handler that serves Prometheus metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// EngineMetrics holds Prometheus metrics for the classification pipeline.
type EngineMetrics struct {
	Classifications *prometheus.CounterVec
	RuleHits        *prometheus.CounterVec
	Duration        prometheus.Histogram
	Errors          prometheus.Counter
}

// NewEngineMetrics creates and registers engine metrics on the given registry.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	m := &EngineMetrics{
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Total number of classified texts, by sentiment and category.",
		}, []string{"sentiment", "category"}),
		RuleHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_hits_total",
			Help:      "Total number of verdicts decided by a special-case rule, by rule name.",
		}, []string{"rule"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_duration_seconds",
			Help:      "Duration of a single classification in seconds.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		Errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classification_errors_total",
			Help:      "Total number of classifications that failed with an internal error.",
		}),
	}

	reg.MustRegister(m.Classifications, m.RuleHits, m.Duration, m.Errors)
	return m
}

// ObserveResult records one successful classification. rule is empty for
// lexicon verdicts.
func (m *EngineMetrics) ObserveResult(sentiment, category, rule string, seconds float64) {
	if m == nil {
		return
	}
	m.Classifications.WithLabelValues(sentiment, category).Inc()
	if rule != "" {
		m.RuleHits.WithLabelValues(rule).Inc()
	}
	m.Duration.Observe(seconds)
}

// ObserveError records one failed classification.
func (m *EngineMetrics) ObserveError() {
	if m == nil {
		return
	}
	m.Errors.Inc()
}

// HTTPMetrics holds Prometheus metrics for the API layer.
type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTPMetrics creates and registers HTTP metrics on the given registry.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests, by route, method and status code.",
		}, []string{"route", "method", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	reg.MustRegister(m.Requests, m.Duration)
	return m
}

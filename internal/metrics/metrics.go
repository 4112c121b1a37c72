// Package metrics defines the Prometheus collectors exported by MotorScope.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector registered by the service.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	ExplorerQueries *prometheus.CounterVec
	ExplorerResults prometheus.Histogram
	CatalogEngines  prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them on reg.
// Use prometheus.NewRegistry() in tests to avoid global state.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "motorscope_http_requests_total",
			Help: "Total HTTP requests by method, route, and status code",
		}, []string{"method", "route", "status"}),

		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "motorscope_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),

		ExplorerQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "motorscope_explorer_queries_total",
			Help: "Ranking queries by fuel filter and priority mode",
		}, []string{"fuel", "priority"}),

		ExplorerResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "motorscope_explorer_results",
			Help:    "Number of engines returned per ranking query",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),

		CatalogEngines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "motorscope_catalog_engines",
			Help: "Number of engines in the loaded catalog",
		}),

		gatherer: reg,
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.ExplorerQueries, m.ExplorerResults, m.CatalogEngines)
	return m
}

// ObserveQuery records one ranking query and its result size.
func (m *Metrics) ObserveQuery(fuel, priority string, results int) {
	if m == nil {
		return
	}
	m.ExplorerQueries.WithLabelValues(fuel, priority).Inc()
	m.ExplorerResults.Observe(float64(results))
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

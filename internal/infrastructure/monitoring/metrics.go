package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/recipelens/backend/internal/domain"
)

const namespace = "recipelens"

// Lookup outcomes recorded by InstrumentFlavorLookup
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds the service's Prometheus collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	flavorLookupsTotal   *prometheus.CounterVec
	flavorLookupDuration prometheus.Histogram

	analysesTotal   *prometheus.CounterVec
	matchPercentage prometheus.Histogram
}

// NewMetrics registers all collectors, plus Go and process collectors, on a new registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		flavorLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "flavor_lookups_total",
				Help:      "Flavor database lookups by outcome",
			},
			[]string{"outcome"},
		),
		flavorLookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "flavor_lookup_duration_seconds",
				Help:      "Flavor database lookup duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),

		analysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Recipe analyses by tradeoff tier",
			},
			[]string{"tier"},
		),
		matchPercentage: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "match_percentage",
				Help:      "Distribution of ingredient match percentages",
				Buckets:   prometheus.LinearBuckets(0, 10, 11),
			},
		),
	}
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// HTTPMiddleware records request counts and latencies per route
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveAnalysis records the tier and match percentage of a finished analysis
func (m *Metrics) ObserveAnalysis(analysis *domain.Analysis) {
	if analysis == nil {
		return
	}
	m.analysesTotal.WithLabelValues(string(analysis.Tier)).Inc()
	if analysis.IngredientsAvailable {
		m.matchPercentage.Observe(analysis.MatchPercent)
	}
}

// ObserveFlavorLookup records one flavor lookup
func (m *Metrics) ObserveFlavorLookup(outcome string, duration time.Duration) {
	m.flavorLookupsTotal.WithLabelValues(outcome).Inc()
	m.flavorLookupDuration.Observe(duration.Seconds())
}

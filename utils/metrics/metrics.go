// Package metrics exposes Prometheus instrumentation for the folio backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_http_requests_total",
		Help: "Total HTTP requests processed, by method, path and status.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "folio_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	sectionFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "folio_section_fallback_total",
		Help: "Section reads answered from static config instead of the store.",
	}, []string{"section"})

	searchQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "folio_search_queries_total",
		Help: "Search requests with a non-empty query.",
	})
)

// ObserveRequest records one completed HTTP request.
func ObserveRequest(method, path string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// CountSectionFallback records a section read that fell back to config.
func CountSectionFallback(section string) {
	sectionFallbacks.WithLabelValues(section).Inc()
}

// CountSearchQuery records one scored search request.
func CountSearchQuery() {
	searchQueries.Inc()
}

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

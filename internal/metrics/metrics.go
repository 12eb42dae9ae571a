// Package metrics provides Prometheus metrics for the athlete hub service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "athletehub"
)

// Manager owns every collector of the service.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	authFailures        *prometheus.CounterVec
	mediaUploads        *prometheus.CounterVec
	registrations       prometheus.Counter
}

// Custom registry to avoid default Go metrics.
var global = NewManager(prometheus.NewRegistry()) //nolint:gochecknoglobals // process-wide metrics

// NewManager registers all collectors on registry.
func NewManager(registry *prometheus.Registry) *Manager {
	auto := promauto.With(registry)
	return &Manager{
		registry: registry,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		}, []string{"endpoint", "method", "status_code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"endpoint", "method", "status_code"}),
		authFailures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Rejected authentication attempts by reason",
		}, []string{"reason"}),
		mediaUploads: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "media_uploads_total",
			Help:      "Profile photo uploads by result",
		}, []string{"result"}),
		registrations: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Athletes registered",
		}),
	}
}

// Registry returns the registry backing the global manager.
func Registry() *prometheus.Registry { return global.registry }

// RecordHTTPRequest counts one request and observes its duration.
func RecordHTTPRequest(endpoint, method string, statusCode int, duration time.Duration) {
	code := strconv.Itoa(statusCode)
	global.httpRequests.WithLabelValues(endpoint, method, code).Inc()
	global.httpRequestDuration.WithLabelValues(endpoint, method, code).
		Observe(float64(duration.Microseconds()) / 1000)
}

// RecordAuthFailure counts a rejected request at the auth gate or login.
func RecordAuthFailure(reason string) {
	global.authFailures.WithLabelValues(reason).Inc()
}

// RecordMediaUpload counts a photo upload outcome, "ok" or "failed".
func RecordMediaUpload(result string) {
	global.mediaUploads.WithLabelValues(result).Inc()
}

// RecordRegistration counts a created athlete.
func RecordRegistration() {
	global.registrations.Inc()
}

// Middleware wraps an HTTP handler to record request metrics.
func Middleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		RecordHTTPRequest(endpoint, r.Method, wrapped.statusCode, time.Since(start))
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

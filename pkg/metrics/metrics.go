// Package metrics exposes Prometheus instrumentation for the API server and
// the offline cache controller.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry creates a registry with the standard process and Go runtime
// collectors registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler returns the HTTP handler serving the registry in the Prometheus
// exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// OfflineMetrics counts offline cache controller activity. A nil
// *OfflineMetrics is valid and records nothing.
type OfflineMetrics struct {
	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	revalidations *prometheus.CounterVec
	warmed        *prometheus.CounterVec
}

// NewOfflineMetrics registers the offline cache collectors.
func NewOfflineMetrics(reg prometheus.Registerer) *OfflineMetrics {
	return &OfflineMetrics{
		hits: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmap_offline_cache_hits_total",
				Help: "Cache hits served by the offline controller, by routing policy",
			},
			[]string{"policy"}, // "api", "tile", "static"
		),
		misses: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmap_offline_cache_misses_total",
				Help: "Cache misses that went to the network, by routing policy",
			},
			[]string{"policy"},
		),
		revalidations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmap_offline_revalidations_total",
				Help: "Background stale-while-revalidate fetches, by result",
			},
			[]string{"result"}, // "refreshed", "failed", "skipped"
		),
		warmed: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmap_offline_warm_total",
				Help: "Warm-cache population attempts during install, by result",
			},
			[]string{"result"}, // "ok", "failed"
		),
	}
}

// RecordHit counts a cache hit for the given routing policy.
func (m *OfflineMetrics) RecordHit(policy string) {
	if m != nil {
		m.hits.WithLabelValues(policy).Inc()
	}
}

// RecordMiss counts a cache miss for the given routing policy.
func (m *OfflineMetrics) RecordMiss(policy string) {
	if m != nil {
		m.misses.WithLabelValues(policy).Inc()
	}
}

// RecordRevalidation counts a background refresh outcome.
func (m *OfflineMetrics) RecordRevalidation(result string) {
	if m != nil {
		m.revalidations.WithLabelValues(result).Inc()
	}
}

// RecordWarm counts one warm-cache population attempt.
func (m *OfflineMetrics) RecordWarm(result string) {
	if m != nil {
		m.warmed.WithLabelValues(result).Inc()
	}
}

// HTTPMetrics counts API server requests. A nil *HTTPMetrics is valid and
// records nothing.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
}

// NewHTTPMetrics registers the API request collectors.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	return &HTTPMetrics{
		requests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmap_http_requests_total",
				Help: "API requests served, by method and status class",
			},
			[]string{"method", "status"},
		),
	}
}

// RecordRequest counts one served API request.
func (m *HTTPMetrics) RecordRequest(method, status string) {
	if m != nil {
		m.requests.WithLabelValues(method, status).Inc()
	}
}

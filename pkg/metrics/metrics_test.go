package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gatherNames(t *testing.T, reg *prometheus.Registry) map[string]bool {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	return names
}

func TestOfflineMetricsRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOfflineMetrics(reg)

	m.RecordHit("api")
	m.RecordMiss("tile")
	m.RecordRevalidation("refreshed")
	m.RecordWarm("ok")

	names := gatherNames(t, reg)
	for _, want := range []string{
		"campusmap_offline_cache_hits_total",
		"campusmap_offline_cache_misses_total",
		"campusmap_offline_revalidations_total",
		"campusmap_offline_warm_total",
	} {
		if !names[want] {
			t.Errorf("metric %s not registered", want)
		}
	}
}

func TestNilMetricsRecordNothing(t *testing.T) {
	// Nil receivers must be safe; the controller runs without metrics when
	// they are disabled in the configuration.
	var offline *OfflineMetrics
	offline.RecordHit("api")
	offline.RecordMiss("api")
	offline.RecordRevalidation("failed")
	offline.RecordWarm("failed")

	var httpMetrics *HTTPMetrics
	httpMetrics.RecordRequest("GET", "2xx")
}

func TestHandlerServesExposition(t *testing.T) {
	reg := NewRegistry()
	m := NewHTTPMetrics(reg)
	m.RecordRequest("GET", "2xx")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "campusmap_http_requests_total") {
		t.Errorf("exposition missing request counter:\n%s", body[:min(len(body), 500)])
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("exposition missing Go runtime collector output")
	}
}

package offline

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// stubTransport answers requests from a fixed table and records every URL it
// was asked for.
type stubTransport struct {
	mu        sync.Mutex
	responses map[string]stubResponse
	requests  []string
}

type stubResponse struct {
	status int
	body   string
	err    error
}

func newStubTransport() *stubTransport {
	return &stubTransport{responses: make(map[string]stubResponse)}
}

func (s *stubTransport) respond(url string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[url] = stubResponse{status: status, body: body}
}

func (s *stubTransport) fail(url string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[url] = stubResponse{err: err}
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	url := req.URL.String()
	s.requests = append(s.requests, url)

	r, ok := s.responses[url]
	if !ok {
		r = stubResponse{status: http.StatusNotFound}
	}
	if r.err != nil {
		return nil, r.err
	}
	return &http.Response{
		StatusCode: r.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Request:    req,
	}, nil
}

func (s *stubTransport) requestCount(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, r := range s.requests {
		if r == url {
			count++
		}
	}
	return count
}

func newTestController(t *testing.T, config Config, base http.RoundTripper) (*Controller, *MemoryStorage) {
	t.Helper()

	storage := NewMemoryStorage()
	controller := New(config, storage, base, nil)
	t.Cleanup(func() {
		if err := controller.Close(); err != nil {
			t.Errorf("failed to close controller: %v", err)
		}
	})
	return controller, storage
}

func seedEntry(t *testing.T, storage Storage, namespace, key, body string) {
	t.Helper()

	ns, err := storage.Open(namespace)
	if err != nil {
		t.Fatalf("failed to open namespace %q: %v", namespace, err)
	}
	err = ns.Put(key, &Entry{
		Status:   http.StatusOK,
		Header:   http.Header{"Content-Type": []string{"application/json"}},
		Body:     []byte(body),
		StoredAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("failed to seed entry %q: %v", key, err)
	}
}

func cachedBody(t *testing.T, storage Storage, namespace, key string) (string, bool) {
	t.Helper()

	ns, err := storage.Open(namespace)
	if err != nil {
		t.Fatalf("failed to open namespace %q: %v", namespace, err)
	}
	entry, ok, err := ns.Match(key)
	if err != nil {
		t.Fatalf("failed to match %q: %v", key, err)
	}
	if !ok {
		return "", false
	}
	return string(entry.Body), true
}

func doGet(t *testing.T, rt http.RoundTripper, url string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := rt.RoundTrip(req)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return string(body)
}

func TestRoundTripAPIMissFetchesAndStores(t *testing.T) {
	base := newStubTransport()
	base.respond("http://campus.test/api/buildings", http.StatusOK, `[{"name":"Main Hall"}]`)

	controller, storage := newTestController(t, Config{}, base)

	resp := doGet(t, controller, "http://campus.test/api/buildings")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := readBody(t, resp); got != `[{"name":"Main Hall"}]` {
		t.Errorf("unexpected body %q", got)
	}

	body, ok := cachedBody(t, storage, "campusmap-data-v1", "http://campus.test/api/buildings")
	if !ok {
		t.Fatal("expected response to be cached")
	}
	if body != `[{"name":"Main Hall"}]` {
		t.Errorf("unexpected cached body %q", body)
	}
}

func TestRoundTripAPIHitServesStaleThenRefreshes(t *testing.T) {
	const url = "http://campus.test/api/events"

	base := newStubTransport()
	base.respond(url, http.StatusOK, `[{"name":"Open Day"}]`)

	controller, storage := newTestController(t, Config{}, base)
	seedEntry(t, storage, "campusmap-data-v1", url, `[]`)

	resp := doGet(t, controller, url)
	if got := readBody(t, resp); got != `[]` {
		t.Errorf("expected the stale cached body, got %q", got)
	}

	// Close waits for the background refresh to land.
	if err := controller.Close(); err != nil {
		t.Fatalf("failed to close controller: %v", err)
	}

	body, ok := cachedBody(t, storage, "campusmap-data-v1", url)
	if !ok {
		t.Fatal("expected entry to remain cached")
	}
	if body != `[{"name":"Open Day"}]` {
		t.Errorf("expected refreshed body, got %q", body)
	}
	if count := base.requestCount(url); count != 1 {
		t.Errorf("expected exactly one background fetch, got %d", count)
	}
}

func TestRoundTripAPIMissNetworkFailurePropagates(t *testing.T) {
	const url = "http://campus.test/api/rooms"

	base := newStubTransport()
	base.fail(url, errors.New("connection refused"))

	controller, storage := newTestController(t, Config{}, base)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if _, err := controller.RoundTrip(req); err == nil {
		t.Fatal("expected network error to propagate")
	}

	if _, ok := cachedBody(t, storage, "campusmap-data-v1", url); ok {
		t.Error("expected nothing to be cached after a failed fetch")
	}
}

func TestRoundTripAPIFailedRevalidationKeepsEntry(t *testing.T) {
	const url = "http://campus.test/api/staff"

	base := newStubTransport()
	base.fail(url, errors.New("connection refused"))

	controller, storage := newTestController(t, Config{}, base)
	seedEntry(t, storage, "campusmap-data-v1", url, `[{"name":"Ada"}]`)

	resp := doGet(t, controller, url)
	if got := readBody(t, resp); got != `[{"name":"Ada"}]` {
		t.Errorf("expected cached body despite network failure, got %q", got)
	}

	if err := controller.Close(); err != nil {
		t.Fatalf("failed to close controller: %v", err)
	}

	body, ok := cachedBody(t, storage, "campusmap-data-v1", url)
	if !ok || body != `[{"name":"Ada"}]` {
		t.Errorf("expected entry to survive failed revalidation, got %q ok=%v", body, ok)
	}
}

func TestRoundTripTileHitSkipsNetwork(t *testing.T) {
	const url = "https://a.tile.openstreetmap.org/12/2200/1343.png"

	base := newStubTransport()
	controller, storage := newTestController(t, Config{}, base)
	seedEntry(t, storage, "campusmap-static-v1", url, "tile-bytes")

	resp := doGet(t, controller, url)
	if got := readBody(t, resp); got != "tile-bytes" {
		t.Errorf("unexpected body %q", got)
	}
	if count := base.requestCount(url); count != 0 {
		t.Errorf("expected a tile hit to never touch the network, got %d requests", count)
	}
}

func TestRoundTripTileMissStoresResponse(t *testing.T) {
	const url = "https://b.tile.openstreetmap.org/12/2200/1344.png"

	base := newStubTransport()
	base.respond(url, http.StatusOK, "tile-bytes")

	controller, storage := newTestController(t, Config{}, base)

	resp := doGet(t, controller, url)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if _, ok := cachedBody(t, storage, "campusmap-static-v1", url); !ok {
		t.Error("expected tile to be cached")
	}
}

func TestRoundTripStaticCacheFirstWithFallback(t *testing.T) {
	const url = "http://campus.test/index.html"

	base := newStubTransport()
	base.respond(url, http.StatusOK, "<html>campus map</html>")

	controller, storage := newTestController(t, Config{}, base)

	// First request misses and populates the cache.
	resp := doGet(t, controller, url)
	if got := readBody(t, resp); got != "<html>campus map</html>" {
		t.Errorf("unexpected body %q", got)
	}

	// Second request is served from the cache even when the network is gone.
	base.fail(url, errors.New("connection refused"))

	resp = doGet(t, controller, url)
	if got := readBody(t, resp); got != "<html>campus map</html>" {
		t.Errorf("expected cached body, got %q", got)
	}
	if _, ok := cachedBody(t, storage, "campusmap-static-v1", url); !ok {
		t.Error("expected asset to be cached")
	}
}

func TestRoundTripNonGETBypassesCache(t *testing.T) {
	const url = "http://campus.test/api/buildings"

	base := newStubTransport()
	base.respond(url, http.StatusCreated, `{"id":"b1"}`)

	controller, storage := newTestController(t, Config{}, base)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, url,
		bytes.NewReader([]byte(`{"name":"Main Hall"}`)))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := controller.RoundTrip(req)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
	if _, ok := cachedBody(t, storage, "campusmap-data-v1", url); ok {
		t.Error("expected POST responses to stay out of the cache")
	}
}

func TestRoundTripNon2xxNotStored(t *testing.T) {
	const url = "http://campus.test/api/missing"

	base := newStubTransport()
	base.respond(url, http.StatusNotFound, `{"title":"Not Found"}`)

	controller, storage := newTestController(t, Config{}, base)

	resp := doGet(t, controller, url)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 to pass through, got %d", resp.StatusCode)
	}
	if _, ok := cachedBody(t, storage, "campusmap-data-v1", url); ok {
		t.Error("expected error responses to stay out of the cache")
	}
}

func TestInstallWarmsCaches(t *testing.T) {
	base := newStubTransport()
	base.respond("http://campus.test/", http.StatusOK, "<html></html>")
	base.respond("http://campus.test/api/buildings", http.StatusOK, `[]`)
	base.respond("http://campus.test/api/events", http.StatusOK, `[]`)

	config := Config{
		Upstream:     "http://campus.test",
		StaticAssets: []string{"/", "/broken.css"},
		APIPaths:     []string{"/api/buildings", "/api/events"},
	}
	controller, storage := newTestController(t, config, base)

	// /broken.css answers 404; Install must swallow it and warm the rest.
	if err := controller.Install(t.Context()); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	if _, ok := cachedBody(t, storage, "campusmap-static-v1", "http://campus.test/"); !ok {
		t.Error("expected the shell to be warmed")
	}
	if _, ok := cachedBody(t, storage, "campusmap-static-v1", "http://campus.test/broken.css"); ok {
		t.Error("expected the failed asset to stay out of the cache")
	}
	for _, url := range []string{"http://campus.test/api/buildings", "http://campus.test/api/events"} {
		if _, ok := cachedBody(t, storage, "campusmap-data-v1", url); !ok {
			t.Errorf("expected %s to be warmed", url)
		}
	}
}

func TestActivateSweepsStaleNamespaces(t *testing.T) {
	storage := NewMemoryStorage()
	for _, name := range []string{"campusmap-static-v1", "campusmap-data-v1", "campusmap-static-v2"} {
		if _, err := storage.Open(name); err != nil {
			t.Fatalf("failed to open namespace %q: %v", name, err)
		}
	}

	controller := New(Config{VersionTag: "v2"}, storage, newStubTransport(), nil)
	if err := controller.Activate(t.Context()); err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	names, err := storage.Names()
	if err != nil {
		t.Fatalf("names failed: %v", err)
	}
	if len(names) != 1 || names[0] != "campusmap-static-v2" {
		t.Errorf("expected only the current-tag namespace to survive, got %v", names)
	}
}

func TestProxyForwardsThroughCache(t *testing.T) {
	var upstreamHits int
	var mu sync.Mutex

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		upstreamHits++
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Main Hall"}]`))
	}))
	t.Cleanup(upstream.Close)

	controller, _ := newTestController(t, Config{Upstream: upstream.URL}, nil)
	proxy, err := NewProxy(upstream.URL, controller)
	if err != nil {
		t.Fatalf("failed to create proxy: %v", err)
	}

	local := httptest.NewServer(proxy)
	t.Cleanup(local.Close)

	resp, err := http.Get(local.URL + "/api/buildings")
	if err != nil {
		t.Fatalf("proxied request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if string(body) != `[{"name":"Main Hall"}]` {
		t.Errorf("unexpected body %q", body)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected upstream headers to pass through, got %q", got)
	}

	// The upstream goes away; the proxy keeps answering from the cache.
	upstream.Close()
	if err := controller.Close(); err != nil {
		t.Fatalf("failed to close controller: %v", err)
	}

	resp, err = http.Get(local.URL + "/api/buildings")
	if err != nil {
		t.Fatalf("proxied request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if string(body) != `[{"name":"Main Hall"}]` {
		t.Errorf("expected cached body while offline, got %q", body)
	}
}

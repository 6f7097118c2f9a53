package offline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"campusmap/internal/logger"
	"campusmap/pkg/metrics"
)

const (
	// DefaultVersionTag names the current cache generation. Bumping it
	// supersedes all previously warmed namespaces on the next Activate.
	DefaultVersionTag = "v1"

	// DefaultAPIPrefix routes requests to the stale-while-revalidate policy.
	DefaultAPIPrefix = "/api/"

	// DefaultTileHost matches OpenStreetMap tile servers, including the
	// a/b/c subdomain mirrors.
	DefaultTileHost = "tile.openstreetmap.org"

	namespacePrefix = "campusmap"
)

// DefaultStaticAssets are the application shell paths warmed during Install.
var DefaultStaticAssets = []string{
	"/",
	"/index.html",
	"/manifest.json",
	"/favicon.ico",
}

// DefaultAPIPaths are the map data endpoints warmed during Install so the
// whole campus dataset is available offline.
var DefaultAPIPaths = []string{
	"/api/buildings",
	"/api/floors",
	"/api/rooms",
	"/api/staff",
	"/api/events",
	"/api/walkpaths",
	"/api/drivepaths",
	"/api/settings",
}

// Config configures the cache controller.
type Config struct {
	// VersionTag versions the cache namespaces.
	VersionTag string `mapstructure:"version_tag" yaml:"version_tag"`
	// Upstream is the origin warm paths are resolved against.
	Upstream string `mapstructure:"upstream" yaml:"upstream"`
	// StaticAssets are warmed into the static namespace during Install.
	StaticAssets []string `mapstructure:"static_assets" yaml:"static_assets,omitempty"`
	// APIPaths are warmed into the data namespace during Install.
	APIPaths []string `mapstructure:"api_paths" yaml:"api_paths,omitempty"`
	// APIPrefix selects the stale-while-revalidate policy.
	APIPrefix string `mapstructure:"api_prefix" yaml:"api_prefix"`
	// TileHosts selects the tile cache-first policy by host substring.
	TileHosts []string `mapstructure:"tile_hosts" yaml:"tile_hosts,omitempty"`
}

// ApplyDefaults fills unset fields with the package defaults.
func (c *Config) ApplyDefaults() {
	if c.VersionTag == "" {
		c.VersionTag = DefaultVersionTag
	}
	if c.APIPrefix == "" {
		c.APIPrefix = DefaultAPIPrefix
	}
	if len(c.TileHosts) == 0 {
		c.TileHosts = []string{DefaultTileHost}
	}
	if c.StaticAssets == nil {
		c.StaticAssets = DefaultStaticAssets
	}
	if c.APIPaths == nil {
		c.APIPaths = DefaultAPIPaths
	}
}

// StaticName returns the static namespace name for the configured tag.
func (c *Config) StaticName() string {
	return fmt.Sprintf("%s-static-%s", namespacePrefix, c.VersionTag)
}

// DataName returns the data namespace name for the configured tag.
func (c *Config) DataName() string {
	return fmt.Sprintf("%s-data-%s", namespacePrefix, c.VersionTag)
}

// Controller is an http.RoundTripper that serves GET requests through the
// offline cache. See the package documentation for the routing policies.
type Controller struct {
	config  Config
	storage Storage
	base    http.RoundTripper
	metrics *metrics.OfflineMetrics

	revalidations sync.WaitGroup
}

// New creates a controller over the given storage. A nil base falls back to
// http.DefaultTransport; a nil m disables metrics.
func New(config Config, storage Storage, base http.RoundTripper, m *metrics.OfflineMetrics) *Controller {
	config.ApplyDefaults()
	if base == nil {
		base = http.DefaultTransport
	}
	return &Controller{
		config:  config,
		storage: storage,
		base:    base,
		metrics: m,
	}
}

// Close waits for in-flight background revalidations to finish.
func (c *Controller) Close() error {
	c.revalidations.Wait()
	return nil
}

// Install warms the static and data namespaces for the current version tag.
// Individual fetch failures are logged and skipped; Install only fails when
// the cache storage itself is unusable.
func (c *Controller) Install(ctx context.Context) error {
	static, err := c.storage.Open(c.config.StaticName())
	if err != nil {
		return fmt.Errorf("failed to open static namespace: %w", err)
	}
	data, err := c.storage.Open(c.config.DataName())
	if err != nil {
		return fmt.Errorf("failed to open data namespace: %w", err)
	}

	warmed, failed := c.warm(ctx, static, c.config.StaticAssets)
	logger.Info("warmed static cache",
		"namespace", c.config.StaticName(), "cached", warmed, "failed", failed)

	warmed, failed = c.warm(ctx, data, c.config.APIPaths)
	logger.Info("warmed data cache",
		"namespace", c.config.DataName(), "cached", warmed, "failed", failed)

	return nil
}

// warm fetches each path and stores successful responses. Returns the number
// of entries cached and the number of attempts that failed.
func (c *Controller) warm(ctx context.Context, ns Namespace, paths []string) (warmed, failed int) {
	for _, path := range paths {
		url := c.resolve(path)

		if err := c.warmOne(ctx, ns, url); err != nil {
			logger.Warn("failed to warm cache entry", "url", url, "error", err)
			c.metrics.RecordWarm("failed")
			failed++
			continue
		}
		c.metrics.RecordWarm("ok")
		warmed++
	}
	return warmed, failed
}

func (c *Controller) warmOne(ctx context.Context, ns Namespace, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return ns.Put(url, &Entry{
		Status:   resp.StatusCode,
		Header:   resp.Header.Clone(),
		Body:     body,
		StoredAt: time.Now().UTC(),
	})
}

// Activate deletes every namespace that does not belong to the current
// version tag, superseding previous cache generations.
func (c *Controller) Activate(ctx context.Context) error {
	names, err := c.storage.Names()
	if err != nil {
		return fmt.Errorf("failed to list namespaces: %w", err)
	}

	keep := map[string]bool{
		c.config.StaticName(): true,
		c.config.DataName():   true,
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if keep[name] {
			continue
		}
		if err := c.storage.Delete(name); err != nil {
			return fmt.Errorf("failed to delete stale namespace %q: %w", name, err)
		}
		logger.Info("deleted stale cache namespace", "namespace", name)
	}
	return nil
}

// RoundTrip implements http.RoundTripper.
func (c *Controller) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}

	switch {
	case strings.HasPrefix(req.URL.Path, c.config.APIPrefix):
		return c.serveAPI(req)
	case c.isTileHost(req.URL.Host):
		return c.serveCacheFirst(req, "tile")
	default:
		return c.serveCacheFirst(req, "static")
	}
}

func (c *Controller) isTileHost(host string) bool {
	for _, tile := range c.config.TileHosts {
		if strings.Contains(host, tile) {
			return true
		}
	}
	return false
}

// serveAPI applies stale-while-revalidate: a cached response is returned
// immediately while a background fetch refreshes the entry. On a miss the
// network response is authoritative and is cached on success.
func (c *Controller) serveAPI(req *http.Request) (*http.Response, error) {
	ns, err := c.storage.Open(c.config.DataName())
	if err != nil {
		return nil, fmt.Errorf("failed to open data namespace: %w", err)
	}

	key := req.URL.String()
	entry, ok, err := ns.Match(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read data cache: %w", err)
	}

	if ok {
		c.metrics.RecordHit("api")
		c.revalidations.Add(1)
		go c.revalidate(ns, key)
		return entry.Response(req), nil
	}

	c.metrics.RecordMiss("api")
	return c.fetchAndStore(ns, req, key)
}

// serveCacheFirst returns a cached response when present and otherwise falls
// back to the network, storing successful responses.
func (c *Controller) serveCacheFirst(req *http.Request, policy string) (*http.Response, error) {
	ns, err := c.storage.Open(c.config.StaticName())
	if err != nil {
		return nil, fmt.Errorf("failed to open static namespace: %w", err)
	}

	key := req.URL.String()
	entry, ok, err := ns.Match(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read static cache: %w", err)
	}
	if ok {
		c.metrics.RecordHit(policy)
		return entry.Response(req), nil
	}

	c.metrics.RecordMiss(policy)
	return c.fetchAndStore(ns, req, key)
}

// fetchAndStore performs the network request and caches a successful
// response before handing it to the caller. Network errors propagate and
// leave the cache untouched.
func (c *Controller) fetchAndStore(ns Namespace, req *http.Request, key string) (*http.Response, error) {
	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	putErr := ns.Put(key, &Entry{
		Status:   resp.StatusCode,
		Header:   resp.Header.Clone(),
		Body:     body,
		StoredAt: time.Now().UTC(),
	})
	if putErr != nil {
		logger.Warn("failed to cache response", "url", key, "error", putErr)
	}

	resp.Body = newBodyReader(body)
	return resp, nil
}

// revalidate refreshes a cached entry in the background. It deliberately
// runs outside the caller's context: the caller already has its response.
func (c *Controller) revalidate(ns Namespace, key string) {
	defer c.revalidations.Done()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, key, nil)
	if err != nil {
		c.metrics.RecordRevalidation("failed")
		logger.Warn("failed to build revalidation request", "url", key, "error", err)
		return
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		c.metrics.RecordRevalidation("failed")
		logger.Debug("revalidation fetch failed", "url", key, "error", err)
		return
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		c.metrics.RecordRevalidation("skipped")
		logger.Debug("revalidation skipped", "url", key, "status", resp.StatusCode)
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordRevalidation("failed")
		logger.Debug("revalidation read failed", "url", key, "error", err)
		return
	}

	err = ns.Put(key, &Entry{
		Status:   resp.StatusCode,
		Header:   resp.Header.Clone(),
		Body:     body,
		StoredAt: time.Now().UTC(),
	})
	if err != nil {
		c.metrics.RecordRevalidation("failed")
		logger.Warn("failed to store revalidated response", "url", key, "error", err)
		return
	}
	c.metrics.RecordRevalidation("refreshed")
}

func (c *Controller) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(c.config.Upstream, "/") + path
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

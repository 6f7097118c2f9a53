package offline

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"campusmap/internal/logger"
)

// Proxy is a local HTTP handler that forwards requests onto the upstream
// origin through the caching controller, so a browser pointed at it keeps
// working while the origin is unreachable.
type Proxy struct {
	upstream *url.URL
	client   *http.Client
}

// NewProxy creates a proxy forwarding to the given upstream origin through
// the controller transport.
func NewProxy(upstream string, controller *Controller) (*Proxy, error) {
	u, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream URL %q: %w", upstream, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream URL %q must include scheme and host", upstream)
	}

	return &Proxy{
		upstream: u,
		client:   &http.Client{Transport: controller},
	}, nil
}

// ServeHTTP implements http.Handler.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := *r.URL
	target.Scheme = p.upstream.Scheme
	target.Host = p.upstream.Host

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), r.Body)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	req.Header = r.Header.Clone()

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Warn("upstream request failed", "url", target.String(), "error", err)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Debug("failed to write proxied response", "url", target.String(), "error", err)
	}
}

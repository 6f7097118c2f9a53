// Package offline implements the client-side cache controller: an
// http.RoundTripper that serves map data, tiles and static assets from
// versioned cache namespaces so the campus map keeps working without a
// network connection.
//
// Three routing policies apply, first match wins:
//
//   - API requests (path under the API prefix) are served
//     stale-while-revalidate: a cached response is returned immediately and
//     refreshed in the background.
//   - Tile requests (known tile hosts) are served cache-first; a hit never
//     touches the network.
//   - Everything else (static assets) is served cache-first with a network
//     fallback that populates the cache on success.
//
// Responses live in named namespaces whose names carry a version tag.
// Install warms the caches for the current tag; Activate deletes every
// namespace that does not belong to the current tag.
package offline

import (
	"bytes"
	"io"
	"net/http"
	"time"
)

func newBodyReader(b []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(b))
}

// Entry is one cached response.
type Entry struct {
	Status   int         `json:"status"`
	Header   http.Header `json:"header"`
	Body     []byte      `json:"body"`
	StoredAt time.Time   `json:"stored_at"`
}

// Response materializes the entry as an http.Response for the given request.
func (e *Entry) Response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        http.StatusText(e.Status),
		StatusCode:    e.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        e.Header.Clone(),
		Body:          newBodyReader(e.Body),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}

// Namespace is one named cache holding responses keyed by request URL.
type Namespace interface {
	// Match returns the cached entry for key, or ok=false on a miss.
	Match(key string) (entry *Entry, ok bool, err error)
	// Put stores the entry under key, replacing any previous entry.
	Put(key string, entry *Entry) error
	// Keys returns every key currently stored.
	Keys() ([]string, error)
}

// Storage manages a set of named cache namespaces.
type Storage interface {
	// Open returns the namespace with the given name, creating it if
	// necessary. An opened namespace is listed by Names even while empty.
	Open(name string) (Namespace, error)
	// Names returns the names of all existing namespaces.
	Names() ([]string, error)
	// Delete removes the namespace and all of its entries. Deleting a
	// namespace that does not exist is not an error.
	Delete(name string) error
	// Close releases the backing storage.
	Close() error
}

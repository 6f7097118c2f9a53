package store

import (
	"fmt"
	"sync"
)

// State describes the initialization state of a Provider.
type State string

const (
	// StateUninitialized means Open has not been called yet.
	StateUninitialized State = "uninitialized"

	// StateReady means the backend opened successfully and is serving.
	StateReady State = "ready"

	// StateFailed means the backend failed to open. The failure is recorded
	// and surfaced on every subsequent access; the failed initialization is
	// not retried for the lifetime of the process.
	StateFailed State = "failed"
)

// Provider owns the process-wide store handle. It is constructed once at
// startup and passed by reference to every consumer, replacing implicit
// module-level connection globals with an explicit initialization state.
type Provider struct {
	config Config

	mu    sync.Mutex
	state State
	store Store
	err   error
}

// NewProvider creates a Provider for the given configuration. The backend is
// not opened until the first call to Open or Store.
func NewProvider(config Config) *Provider {
	return &Provider{config: config, state: StateUninitialized}
}

// Open initializes the backend if it has not been attempted yet and returns
// the store. A previous failure is returned as-is without retrying.
func (p *Provider) Open() (Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case StateReady:
		return p.store, nil
	case StateFailed:
		return nil, fmt.Errorf("persistence unavailable: %w", p.err)
	}

	s, err := New(p.config)
	if err != nil {
		p.state = StateFailed
		p.err = err
		return nil, fmt.Errorf("persistence unavailable: %w", err)
	}

	p.state = StateReady
	p.store = s
	return s, nil
}

// Store returns the opened store, initializing on first use.
func (p *Provider) Store() (Store, error) {
	return p.Open()
}

// State reports the current initialization state.
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Close releases the backend if it was opened.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateReady {
		return nil
	}
	err := p.store.Close()
	p.state = StateUninitialized
	p.store = nil
	return err
}

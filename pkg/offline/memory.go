package offline

import (
	"maps"
	"slices"
	"sync"
)

// MemoryStorage keeps cache namespaces in process memory. It is safe for
// concurrent use and suited to tests and short-lived proxies.
type MemoryStorage struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]*Entry
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{namespaces: make(map[string]map[string]*Entry)}
}

// Open implements Storage.
func (s *MemoryStorage) Open(name string) (Namespace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.namespaces[name]; !ok {
		s.namespaces[name] = make(map[string]*Entry)
	}
	return &memoryNamespace{storage: s, name: name}, nil
}

// Names implements Storage.
func (s *MemoryStorage) Names() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := slices.Collect(maps.Keys(s.namespaces))
	slices.Sort(names)
	return names, nil
}

// Delete implements Storage.
func (s *MemoryStorage) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.namespaces, name)
	return nil
}

// Close is a no-op for the in-memory storage.
func (s *MemoryStorage) Close() error {
	return nil
}

type memoryNamespace struct {
	storage *MemoryStorage
	name    string
}

func (n *memoryNamespace) Match(key string) (*Entry, bool, error) {
	n.storage.mu.RLock()
	defer n.storage.mu.RUnlock()

	entry, ok := n.storage.namespaces[n.name][key]
	if !ok {
		return nil, false, nil
	}
	return cloneEntry(entry), true, nil
}

func (n *memoryNamespace) Put(key string, entry *Entry) error {
	n.storage.mu.Lock()
	defer n.storage.mu.Unlock()

	ns, ok := n.storage.namespaces[n.name]
	if !ok {
		// The namespace was deleted after this handle was opened.
		ns = make(map[string]*Entry)
		n.storage.namespaces[n.name] = ns
	}
	ns[key] = cloneEntry(entry)
	return nil
}

func (n *memoryNamespace) Keys() ([]string, error) {
	n.storage.mu.RLock()
	defer n.storage.mu.RUnlock()

	keys := slices.Collect(maps.Keys(n.storage.namespaces[n.name]))
	slices.Sort(keys)
	return keys, nil
}

// cloneEntry copies an entry so callers cannot mutate stored state.
func cloneEntry(e *Entry) *Entry {
	clone := &Entry{
		Status:   e.Status,
		Header:   e.Header.Clone(),
		Body:     slices.Clone(e.Body),
		StoredAt: e.StoredAt,
	}
	return clone
}

package offline

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerStorage persists cache namespaces in a Badger database so warmed
// caches survive proxy restarts.
//
// Key layout:
//
//	m|<namespace>        marker, written when the namespace is opened
//	e|<namespace>|<key>  cached entry, JSON encoded
type BadgerStorage struct {
	db *badger.DB
}

// BadgerConfig configures the on-disk cache database.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string `mapstructure:"path" yaml:"path"`
	// InMemory keeps the database in RAM. Used by tests.
	InMemory bool `mapstructure:"in_memory" yaml:"in_memory"`
}

// NewBadgerStorage opens the cache database at the configured path.
func NewBadgerStorage(config BadgerConfig) (*BadgerStorage, error) {
	opts := badger.DefaultOptions(config.Path).WithLogger(nil)
	if config.InMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open offline cache database: %w", err)
	}
	return &BadgerStorage{db: db}, nil
}

// Close closes the underlying database.
func (s *BadgerStorage) Close() error {
	return s.db.Close()
}

func markerKey(name string) []byte {
	return []byte("m|" + name)
}

func entryKey(name, key string) []byte {
	return []byte("e|" + name + "|" + key)
}

func entryPrefix(name string) []byte {
	return []byte("e|" + name + "|")
}

// Open implements Storage.
func (s *BadgerStorage) Open(name string) (Namespace, error) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(markerKey(name), nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open namespace %q: %w", name, err)
	}
	return &badgerNamespace{db: s.db, name: name}, nil
}

// Names implements Storage.
func (s *BadgerStorage) Names() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte("m|")

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), "m|"))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}
	return names, nil
}

// Delete implements Storage.
func (s *BadgerStorage) Delete(name string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = entryPrefix(name)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := txn.Delete(it.Item().KeyCopy(nil)); err != nil {
				return err
			}
		}
		return txn.Delete(markerKey(name))
	})
	if err != nil {
		return fmt.Errorf("failed to delete namespace %q: %w", name, err)
	}
	return nil
}

type badgerNamespace struct {
	db   *badger.DB
	name string
}

func (n *badgerNamespace) Match(key string) (*Entry, bool, error) {
	var entry Entry

	err := n.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(entryKey(n.name, key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached entry: %w", err)
	}
	return &entry, true, nil
}

func (n *badgerNamespace) Put(key string, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cached entry: %w", err)
	}

	err = n.db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(n.name, key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store cached entry: %w", err)
	}
	return nil
}

func (n *badgerNamespace) Keys() ([]string, error) {
	prefix := entryPrefix(n.name)
	var keys []string

	err := n.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, strings.TrimPrefix(string(it.Item().Key()), string(prefix)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cached keys: %w", err)
	}
	return keys, nil
}

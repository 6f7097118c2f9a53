package badgerstore

import (
	"context"
	"encoding/json"

	badger "github.com/dgraph-io/badger/v4"

	"campusmap/pkg/models"
)

// Generic Badger helpers shared by the per-entity files. Records are stored
// as JSON; badger.ErrKeyNotFound maps to models.ErrNotFound.

// getRecord retrieves and decodes a single record.
func getRecord[T any](ctx context.Context, db *badger.DB, key []byte) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record T
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return models.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// putRecord encodes and writes a single record unconditionally.
func putRecord[T any](ctx context.Context, db *badger.DB, key []byte, record *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// deleteRecord removes a key. Missing keys are not an error.
func deleteRecord(ctx context.Context, db *badger.DB, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// listRecords scans all records under a prefix. A nil filter keeps every
// record. Returns an empty slice, not nil, when nothing matches.
func listRecords[T any](ctx context.Context, db *badger.DB, prefix []byte, filter func(*T) bool) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]*T, 0)
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record T
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				if filter == nil || filter(&record) {
					results = append(results, &record)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// createUnique writes a record only if the key does not already exist,
// returning dupErr otherwise. Used for the natural-key records (admin users,
// settings) whose create path has a uniqueness constraint.
func createUnique[T any](ctx context.Context, db *badger.DB, key []byte, record *T, dupErr error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return dupErr
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		return txn.Set(key, data)
	})
}

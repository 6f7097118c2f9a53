package badgerstore

import (
	"context"
	"encoding/json"

	badger "github.com/dgraph-io/badger/v4"

	"campusmap/pkg/models"
)

func (s *BadgerStore) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	return listRecords[models.Setting](ctx, s.db, []byte(prefixSetting), nil)
}

func (s *BadgerStore) GetSetting(ctx context.Context, settingKey string) (*models.Setting, error) {
	return getRecord[models.Setting](ctx, s.db, key(prefixSetting, settingKey))
}

func (s *BadgerStore) CreateSetting(ctx context.Context, in models.InsertSetting) (*models.Setting, error) {
	setting := models.NewSetting(in)
	if err := createUnique(ctx, s.db, key(prefixSetting, setting.Key), setting, models.ErrDuplicateSetting); err != nil {
		return nil, err
	}
	return setting, nil
}

// UpdateSetting changes only the value of an existing setting inside one
// transaction. An unknown key returns models.ErrNotFound and nothing is
// created.
func (s *BadgerStore) UpdateSetting(ctx context.Context, settingKey, value string) (*models.Setting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var setting models.Setting
	err := s.db.Update(func(txn *badger.Txn) error {
		k := key(prefixSetting, settingKey)
		item, err := txn.Get(k)
		if err == badger.ErrKeyNotFound {
			return models.ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &setting)
		}); err != nil {
			return err
		}

		setting.Value = value
		data, err := json.Marshal(&setting)
		if err != nil {
			return err
		}
		return txn.Set(k, data)
	})
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

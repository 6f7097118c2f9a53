package gormstore

import (
	"context"

	"campusmap/pkg/models"
)

func (s *GORMStore) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	return listAll[models.Setting](s.db, ctx)
}

func (s *GORMStore) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	return getByField[models.Setting](s.db, ctx, "key", key)
}

func (s *GORMStore) CreateSetting(ctx context.Context, in models.InsertSetting) (*models.Setting, error) {
	setting := models.NewSetting(in)
	if err := s.db.WithContext(ctx).Create(setting).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.ErrDuplicateSetting
		}
		return nil, err
	}
	return setting, nil
}

// UpdateSetting changes only the value of an existing setting. Unlike the
// entity updates it checks existence first: an unknown key returns
// models.ErrNotFound and nothing is created.
func (s *GORMStore) UpdateSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	setting, err := getByField[models.Setting](s.db, ctx, "key", key)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(setting).Update("value", value).Error; err != nil {
		return nil, err
	}
	setting.Value = value
	return setting, nil
}

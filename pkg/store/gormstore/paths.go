package gormstore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

func (s *GORMStore) ListWalkpaths(ctx context.Context) ([]*models.Walkpath, error) {
	return listAll[models.Walkpath](s.db, ctx)
}

func (s *GORMStore) GetWalkpath(ctx context.Context, id string) (*models.Walkpath, error) {
	return getByField[models.Walkpath](s.db, ctx, "id", id)
}

func (s *GORMStore) CreateWalkpath(ctx context.Context, in models.InsertWalkpath) (*models.Walkpath, error) {
	path := models.NewWalkpath(in, uuid.New().String())
	if err := s.db.WithContext(ctx).Create(path).Error; err != nil {
		return nil, err
	}
	return path, nil
}

func (s *GORMStore) UpdateWalkpath(ctx context.Context, id string, in models.InsertWalkpath) (*models.Walkpath, error) {
	path := models.NewWalkpath(in, id)
	if err := upsertRecord(s.db, ctx, path); err != nil {
		return nil, err
	}
	return path, nil
}

func (s *GORMStore) DeleteWalkpath(ctx context.Context, id string) error {
	return deleteByID[models.Walkpath](s.db, ctx, id)
}

func (s *GORMStore) ListDrivepaths(ctx context.Context) ([]*models.Drivepath, error) {
	return listAll[models.Drivepath](s.db, ctx)
}

func (s *GORMStore) GetDrivepath(ctx context.Context, id string) (*models.Drivepath, error) {
	return getByField[models.Drivepath](s.db, ctx, "id", id)
}

func (s *GORMStore) CreateDrivepath(ctx context.Context, in models.InsertDrivepath) (*models.Drivepath, error) {
	path := models.NewDrivepath(in, uuid.New().String())
	if err := s.db.WithContext(ctx).Create(path).Error; err != nil {
		return nil, err
	}
	return path, nil
}

func (s *GORMStore) UpdateDrivepath(ctx context.Context, id string, in models.InsertDrivepath) (*models.Drivepath, error) {
	path := models.NewDrivepath(in, id)
	if err := upsertRecord(s.db, ctx, path); err != nil {
		return nil, err
	}
	return path, nil
}

func (s *GORMStore) DeleteDrivepath(ctx context.Context, id string) error {
	return deleteByID[models.Drivepath](s.db, ctx, id)
}

package gormstore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

func (s *GORMStore) ListBuildings(ctx context.Context) ([]*models.Building, error) {
	return listAll[models.Building](s.db, ctx)
}

func (s *GORMStore) GetBuilding(ctx context.Context, id string) (*models.Building, error) {
	return getByField[models.Building](s.db, ctx, "id", id)
}

func (s *GORMStore) CreateBuilding(ctx context.Context, in models.InsertBuilding) (*models.Building, error) {
	building := models.NewBuilding(in, uuid.New().String())
	if err := s.db.WithContext(ctx).Create(building).Error; err != nil {
		return nil, err
	}
	return building, nil
}

func (s *GORMStore) UpdateBuilding(ctx context.Context, id string, in models.InsertBuilding) (*models.Building, error) {
	building := models.NewBuilding(in, id)
	if err := upsertRecord(s.db, ctx, building); err != nil {
		return nil, err
	}
	return building, nil
}

func (s *GORMStore) DeleteBuilding(ctx context.Context, id string) error {
	return deleteByID[models.Building](s.db, ctx, id)
}

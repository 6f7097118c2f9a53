package gormstore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

func (s *GORMStore) ListFloors(ctx context.Context) ([]*models.Floor, error) {
	return listAll[models.Floor](s.db, ctx)
}

func (s *GORMStore) GetFloor(ctx context.Context, id string) (*models.Floor, error) {
	return getByField[models.Floor](s.db, ctx, "id", id)
}

func (s *GORMStore) FloorsByBuilding(ctx context.Context, buildingID string) ([]*models.Floor, error) {
	return listByField[models.Floor](s.db, ctx, "building_id", buildingID)
}

func (s *GORMStore) CreateFloor(ctx context.Context, in models.InsertFloor) (*models.Floor, error) {
	floor := models.NewFloor(in, uuid.New().String())
	if err := s.db.WithContext(ctx).Create(floor).Error; err != nil {
		return nil, err
	}
	return floor, nil
}

func (s *GORMStore) UpdateFloor(ctx context.Context, id string, in models.InsertFloor) (*models.Floor, error) {
	floor := models.NewFloor(in, id)
	if err := upsertRecord(s.db, ctx, floor); err != nil {
		return nil, err
	}
	return floor, nil
}

func (s *GORMStore) DeleteFloor(ctx context.Context, id string) error {
	return deleteByID[models.Floor](s.db, ctx, id)
}

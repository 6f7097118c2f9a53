package gormstore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

func (s *GORMStore) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return listAll[models.Room](s.db, ctx)
}

func (s *GORMStore) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return getByField[models.Room](s.db, ctx, "id", id)
}

func (s *GORMStore) RoomsByFloor(ctx context.Context, floorID string) ([]*models.Room, error) {
	return listByField[models.Room](s.db, ctx, "floor_id", floorID)
}

func (s *GORMStore) RoomsByBuilding(ctx context.Context, buildingID string) ([]*models.Room, error) {
	return listByField[models.Room](s.db, ctx, "building_id", buildingID)
}

func (s *GORMStore) CreateRoom(ctx context.Context, in models.InsertRoom) (*models.Room, error) {
	room := models.NewRoom(in, uuid.New().String())
	if err := s.db.WithContext(ctx).Create(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

func (s *GORMStore) UpdateRoom(ctx context.Context, id string, in models.InsertRoom) (*models.Room, error) {
	room := models.NewRoom(in, id)
	if err := upsertRecord(s.db, ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *GORMStore) DeleteRoom(ctx context.Context, id string) error {
	return deleteByID[models.Room](s.db, ctx, id)
}

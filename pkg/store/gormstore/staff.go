package gormstore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

func (s *GORMStore) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	return listAll[models.Staff](s.db, ctx)
}

func (s *GORMStore) GetStaffMember(ctx context.Context, id string) (*models.Staff, error) {
	return getByField[models.Staff](s.db, ctx, "id", id)
}

func (s *GORMStore) StaffByBuilding(ctx context.Context, buildingID string) ([]*models.Staff, error) {
	return listByField[models.Staff](s.db, ctx, "building_id", buildingID)
}

func (s *GORMStore) CreateStaff(ctx context.Context, in models.InsertStaff) (*models.Staff, error) {
	staff := models.NewStaff(in, uuid.New().String())
	if err := s.db.WithContext(ctx).Create(staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *GORMStore) UpdateStaff(ctx context.Context, id string, in models.InsertStaff) (*models.Staff, error) {
	staff := models.NewStaff(in, id)
	if err := upsertRecord(s.db, ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *GORMStore) DeleteStaff(ctx context.Context, id string) error {
	return deleteByID[models.Staff](s.db, ctx, id)
}

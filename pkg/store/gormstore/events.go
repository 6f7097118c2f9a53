package gormstore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

func (s *GORMStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return listAll[models.Event](s.db, ctx)
}

func (s *GORMStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return getByField[models.Event](s.db, ctx, "id", id)
}

func (s *GORMStore) CreateEvent(ctx context.Context, in models.InsertEvent) (*models.Event, error) {
	event := models.NewEvent(in, uuid.New().String())
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *GORMStore) UpdateEvent(ctx context.Context, id string, in models.InsertEvent) (*models.Event, error) {
	event := models.NewEvent(in, id)
	if err := upsertRecord(s.db, ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *GORMStore) DeleteEvent(ctx context.Context, id string) error {
	return deleteByID[models.Event](s.db, ctx, id)
}

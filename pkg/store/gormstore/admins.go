package gormstore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

func (s *GORMStore) ListAdmins(ctx context.Context) ([]*models.AdminUser, error) {
	return listAll[models.AdminUser](s.db, ctx)
}

func (s *GORMStore) AdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	return getByField[models.AdminUser](s.db, ctx, "username", username)
}

func (s *GORMStore) CreateAdmin(ctx context.Context, in models.InsertAdminUser) (*models.AdminUser, error) {
	admin := models.NewAdminUser(in, uuid.New().String())
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.ErrDuplicateAdmin
		}
		return nil, err
	}
	return admin, nil
}

package badgerstore

import (
	"context"

	"github.com/google/uuid"

	"campusmap/pkg/models"
)

func (s *BadgerStore) ListAdmins(ctx context.Context) ([]*models.AdminUser, error) {
	return listRecords[models.AdminUser](ctx, s.db, []byte(prefixAdmin), nil)
}

func (s *BadgerStore) AdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	return getRecord[models.AdminUser](ctx, s.db, key(prefixAdmin, username))
}

func (s *BadgerStore) CreateAdmin(ctx context.Context, in models.InsertAdminUser) (*models.AdminUser, error) {
	admin := models.NewAdminUser(in, uuid.New().String())
	if err := createUnique(ctx, s.db, key(prefixAdmin, admin.Username), admin, models.ErrDuplicateAdmin); err != nil {
		return nil, err
	}
	return admin, nil
}

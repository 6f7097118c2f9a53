package gormstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Generic GORM helpers shared by the per-entity files. They reduce the CRUD
// boilerplate to one-liners and keep the contract semantics (not-found
// conversion, empty-slice lists, permissive upsert, unconditional delete) in
// one place.

// getByField retrieves a single record of type T by matching field=value.
// gorm.ErrRecordNotFound is converted to models.ErrNotFound.
func getByField[T any](db *gorm.DB, ctx context.Context, field string, value any) (*T, error) {
	var result T
	if err := db.WithContext(ctx).Where(field+" = ?", value).First(&result).Error; err != nil {
		return nil, convertNotFoundError(err)
	}
	return &result, nil
}

// listAll retrieves all records of type T. Returns an empty slice, not nil,
// when the table is empty.
func listAll[T any](db *gorm.DB, ctx context.Context) ([]*T, error) {
	results := make([]*T, 0)
	if err := db.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// listByField retrieves all records of type T matching field=value. Returns
// an empty slice, not nil, when nothing matches.
func listByField[T any](db *gorm.DB, ctx context.Context, field string, value any) ([]*T, error) {
	results := make([]*T, 0)
	if err := db.WithContext(ctx).Where(field+" = ?", value).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// upsertRecord writes the record unconditionally: an existing row with the
// same primary key is fully replaced, a missing row is inserted. This is the
// permissive-upsert update semantic shared by all backends.
func upsertRecord[T any](db *gorm.DB, ctx context.Context, record *T) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(record).Error
}

// deleteByID deletes the record of type T with the given id. Deleting a
// missing id is reported as success; callers cannot distinguish "deleted"
// from "was never there".
func deleteByID[T any](db *gorm.DB, ctx context.Context, id string) error {
	var zero T
	return db.WithContext(ctx).Where("id = ?", id).Delete(&zero).Error
}

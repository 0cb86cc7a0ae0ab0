package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// takeOne runs a single-row lookup. No matching row is (nil, nil).
func takeOne[T any](ctx context.Context, db *gorm.DB, op string, cond string, args ...interface{}) (*T, error) {
	var out T
	err := db.WithContext(ctx).Where(cond, args...).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, queryErr(op, err)
	}
	return &out, nil
}

// findMany runs a single-table lookup ordered by id.
func findMany[T any](ctx context.Context, db *gorm.DB, op string, cond string, args ...interface{}) ([]*T, error) {
	return scanAll[T](op, db.WithContext(ctx).Where(cond, args...).Order("id"))
}

// scanAll executes q and always returns a non-nil slice on success.
func scanAll[T any](op string, q *gorm.DB) ([]*T, error) {
	res := make([]*T, 0)
	if err := q.Find(&res).Error; err != nil {
		return nil, queryErr(op, err)
	}
	return res, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/questionsdb/internal/model"
)

// UserRepository 用户仓储接口
type UserRepository interface {
	// FindByID 主键查询，不存在返回 (nil, nil)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// FindByName 姓名不唯一，返回全部匹配
	FindByName(ctx context.Context, fname, lname string) ([]*model.User, error)
}

type userRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return takeOne[model.User](ctx, r.db, "find user by id", "id = ?", id)
}

func (r *userRepository) FindByName(ctx context.Context, fname, lname string) ([]*model.User, error) {
	return findMany[model.User](ctx, r.db, "find users by name", "fname = ? AND lname = ?", fname, lname)
}

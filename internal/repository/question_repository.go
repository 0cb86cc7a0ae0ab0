package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/questionsdb/internal/model"
)

// QuestionRepository 问题仓储接口
type QuestionRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Question, error)
	// FindByAuthorID 返回作者的全部问题
	FindByAuthorID(ctx context.Context, authorID int64) ([]*model.Question, error)
}

type questionRepository struct{ db *gorm.DB }

func NewQuestionRepository(db *gorm.DB) QuestionRepository { return &questionRepository{db: db} }

func (r *questionRepository) FindByID(ctx context.Context, id int64) (*model.Question, error) {
	return takeOne[model.Question](ctx, r.db, "find question by id", "id = ?", id)
}

func (r *questionRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]*model.Question, error) {
	return findMany[model.Question](ctx, r.db, "find questions by author", "author_id = ?", authorID)
}

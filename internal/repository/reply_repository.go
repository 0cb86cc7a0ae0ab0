package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/questionsdb/internal/model"
)

// ReplyRepository 回复仓储接口
type ReplyRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Reply, error)
	FindByUserID(ctx context.Context, userID int64) ([]*model.Reply, error)
	FindByQuestionID(ctx context.Context, questionID int64) ([]*model.Reply, error)
	// FindByParentID 查询直接子回复
	FindByParentID(ctx context.Context, parentID int64) ([]*model.Reply, error)
}

type replyRepository struct{ db *gorm.DB }

func NewReplyRepository(db *gorm.DB) ReplyRepository { return &replyRepository{db: db} }

func (r *replyRepository) FindByID(ctx context.Context, id int64) (*model.Reply, error) {
	return takeOne[model.Reply](ctx, r.db, "find reply by id", "id = ?", id)
}

func (r *replyRepository) FindByUserID(ctx context.Context, userID int64) ([]*model.Reply, error) {
	return findMany[model.Reply](ctx, r.db, "find replies by user", "user_id = ?", userID)
}

func (r *replyRepository) FindByQuestionID(ctx context.Context, questionID int64) ([]*model.Reply, error) {
	return findMany[model.Reply](ctx, r.db, "find replies by question", "question_id = ?", questionID)
}

func (r *replyRepository) FindByParentID(ctx context.Context, parentID int64) ([]*model.Reply, error) {
	return findMany[model.Reply](ctx, r.db, "find replies by parent", "parent_id = ?", parentID)
}

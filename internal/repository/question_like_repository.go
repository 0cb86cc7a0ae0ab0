package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/questionsdb/internal/model"
)

// QuestionLikeRepository 点赞仓储
type QuestionLikeRepository interface {
	FindByID(ctx context.Context, id int64) (*model.QuestionLike, error)
	LikersForQuestionID(ctx context.Context, questionID int64) ([]*model.User, error)
	// NumLikesForQuestionID 返回点赞数（整数）
	NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error)
	LikedQuestionsForUserID(ctx context.Context, userID int64) ([]*model.Question, error)
	MostLikedQuestions(ctx context.Context, n int) ([]*model.Question, error)
}

type questionLikeRepository struct{ db *gorm.DB }

func NewQuestionLikeRepository(db *gorm.DB) QuestionLikeRepository {
	return &questionLikeRepository{db: db}
}

func (r *questionLikeRepository) FindByID(ctx context.Context, id int64) (*model.QuestionLike, error) {
	return takeOne[model.QuestionLike](ctx, r.db, "find question like by id", "id = ?", id)
}

func (r *questionLikeRepository) LikersForQuestionID(ctx context.Context, questionID int64) ([]*model.User, error) {
	return usersJoinedBy(ctx, r.db, "likers for question", tableLikes, questionID)
}

func (r *questionLikeRepository) NumLikesForQuestionID(ctx context.Context, questionID int64) (int64, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.QuestionLike{}).
		Where("question_id = ?", questionID).
		Count(&cnt).Error; err != nil {
		return 0, queryErr("num likes for question", err)
	}
	return cnt, nil
}

func (r *questionLikeRepository) LikedQuestionsForUserID(ctx context.Context, userID int64) ([]*model.Question, error) {
	return questionsJoinedBy(ctx, r.db, "liked questions for user", tableLikes, userID)
}

func (r *questionLikeRepository) MostLikedQuestions(ctx context.Context, n int) ([]*model.Question, error) {
	return rankQuestions(ctx, r.db, "most liked questions", tableLikes, n)
}

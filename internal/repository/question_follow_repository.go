package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/questionsdb/internal/model"
)

// QuestionFollowRepository 关注关系仓储（用户 关注 问题）
type QuestionFollowRepository interface {
    FindByID(ctx context.Context, id int64) (*model.QuestionFollow, error)
    // MostFollowedQuestions 按关注数降序取前 n 个问题，关注数相同按 id 升序
    MostFollowedQuestions(ctx context.Context, n int) ([]*model.Question, error)
    FollowersForQuestionID(ctx context.Context, questionID int64) ([]*model.User, error)
    FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]*model.Question, error)
}

type questionFollowRepository struct {
    db *gorm.DB
}

func NewQuestionFollowRepository(db *gorm.DB) QuestionFollowRepository {
    return &questionFollowRepository{db: db}
}

func (r *questionFollowRepository) FindByID(ctx context.Context, id int64) (*model.QuestionFollow, error) {
    return takeOne[model.QuestionFollow](ctx, r.db, "find question follow by id", "id = ?", id)
}

func (r *questionFollowRepository) MostFollowedQuestions(ctx context.Context, n int) ([]*model.Question, error) {
    return rankQuestions(ctx, r.db, "most followed questions", tableFollows, n)
}

func (r *questionFollowRepository) FollowersForQuestionID(ctx context.Context, questionID int64) ([]*model.User, error) {
    return usersJoinedBy(ctx, r.db, "followers for question", tableFollows, questionID)
}

func (r *questionFollowRepository) FollowedQuestionsForUserID(ctx context.Context, userID int64) ([]*model.Question, error) {
    return questionsJoinedBy(ctx, r.db, "followed questions for user", tableFollows, userID)
}

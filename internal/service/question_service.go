package service

import (
	"context"

	"github.com/d60-Lab/questionsdb/internal/model"
	"github.com/d60-Lab/questionsdb/internal/repository"
)

// QuestionService 问题及其关联（作者、回复、关注者、点赞者）
type QuestionService interface {
	FindByID(ctx context.Context, id int64) (*model.Question, error)
	FindByAuthorID(ctx context.Context, authorID int64) ([]*model.Question, error)
	Author(ctx context.Context, q *model.Question) (*model.User, error)
	Replies(ctx context.Context, q *model.Question) ([]*model.Reply, error)
	Followers(ctx context.Context, q *model.Question) ([]*model.User, error)
	Likers(ctx context.Context, q *model.Question) ([]*model.User, error)
	NumLikes(ctx context.Context, q *model.Question) (int64, error)
	MostFollowed(ctx context.Context, n int) ([]*model.Question, error)
	MostLiked(ctx context.Context, n int) ([]*model.Question, error)
}

type questionService struct {
	users     repository.UserRepository
	questions repository.QuestionRepository
	replies   repository.ReplyRepository
	follows   repository.QuestionFollowRepository
	likes     repository.QuestionLikeRepository
}

func NewQuestionService(repos *repository.Repositories) QuestionService {
	return &questionService{
		users:     repos.Users,
		questions: repos.Questions,
		replies:   repos.Replies,
		follows:   repos.Follows,
		likes:     repos.Likes,
	}
}

func (s *questionService) FindByID(ctx context.Context, id int64) (*model.Question, error) {
	return s.questions.FindByID(ctx, id)
}

func (s *questionService) FindByAuthorID(ctx context.Context, authorID int64) ([]*model.Question, error) {
	return s.questions.FindByAuthorID(ctx, authorID)
}

func (s *questionService) Author(ctx context.Context, q *model.Question) (*model.User, error) {
	if q == nil {
		return nil, nil
	}
	return s.users.FindByID(ctx, q.AuthorID)
}

func (s *questionService) Replies(ctx context.Context, q *model.Question) ([]*model.Reply, error) {
	if q == nil {
		return []*model.Reply{}, nil
	}
	return s.replies.FindByQuestionID(ctx, q.ID)
}

func (s *questionService) Followers(ctx context.Context, q *model.Question) ([]*model.User, error) {
	if q == nil {
		return []*model.User{}, nil
	}
	return s.follows.FollowersForQuestionID(ctx, q.ID)
}

func (s *questionService) Likers(ctx context.Context, q *model.Question) ([]*model.User, error) {
	if q == nil {
		return []*model.User{}, nil
	}
	return s.likes.LikersForQuestionID(ctx, q.ID)
}

func (s *questionService) NumLikes(ctx context.Context, q *model.Question) (int64, error) {
	if q == nil {
		return 0, nil
	}
	return s.likes.NumLikesForQuestionID(ctx, q.ID)
}

func (s *questionService) MostFollowed(ctx context.Context, n int) ([]*model.Question, error) {
	return s.follows.MostFollowedQuestions(ctx, n)
}

func (s *questionService) MostLiked(ctx context.Context, n int) ([]*model.Question, error) {
	return s.likes.MostLikedQuestions(ctx, n)
}

package service

import (
	"context"

	"github.com/d60-Lab/questionsdb/internal/model"
	"github.com/d60-Lab/questionsdb/internal/repository"
)

// UserService 用户及其关联（提问、回复、关注、点赞）
type UserService interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByName(ctx context.Context, fname, lname string) ([]*model.User, error)
	AuthoredQuestions(ctx context.Context, u *model.User) ([]*model.Question, error)
	AuthoredReplies(ctx context.Context, u *model.User) ([]*model.Reply, error)
	FollowedQuestions(ctx context.Context, u *model.User) ([]*model.Question, error)
	LikedQuestions(ctx context.Context, u *model.User) ([]*model.Question, error)
}

type userService struct {
	users     repository.UserRepository
	questions repository.QuestionRepository
	replies   repository.ReplyRepository
	follows   repository.QuestionFollowRepository
	likes     repository.QuestionLikeRepository
}

func NewUserService(repos *repository.Repositories) UserService {
	return &userService{
		users:     repos.Users,
		questions: repos.Questions,
		replies:   repos.Replies,
		follows:   repos.Follows,
		likes:     repos.Likes,
	}
}

func (s *userService) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *userService) FindByName(ctx context.Context, fname, lname string) ([]*model.User, error) {
	return s.users.FindByName(ctx, fname, lname)
}

func (s *userService) AuthoredQuestions(ctx context.Context, u *model.User) ([]*model.Question, error) {
	if u == nil {
		return []*model.Question{}, nil
	}
	return s.questions.FindByAuthorID(ctx, u.ID)
}

func (s *userService) AuthoredReplies(ctx context.Context, u *model.User) ([]*model.Reply, error) {
	if u == nil {
		return []*model.Reply{}, nil
	}
	return s.replies.FindByUserID(ctx, u.ID)
}

func (s *userService) FollowedQuestions(ctx context.Context, u *model.User) ([]*model.Question, error) {
	if u == nil {
		return []*model.Question{}, nil
	}
	return s.follows.FollowedQuestionsForUserID(ctx, u.ID)
}

func (s *userService) LikedQuestions(ctx context.Context, u *model.User) ([]*model.Question, error) {
	if u == nil {
		return []*model.Question{}, nil
	}
	return s.likes.LikedQuestionsForUserID(ctx, u.ID)
}

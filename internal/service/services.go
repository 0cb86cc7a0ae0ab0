package service

import "github.com/d60-Lab/questionsdb/internal/repository"

// Services 关系遍历服务集合
type Services struct {
	Users     UserService
	Questions QuestionService
	Replies   ReplyService
	Follows   repository.QuestionFollowRepository
	Likes     repository.QuestionLikeRepository
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Users:     NewUserService(repos),
		Questions: NewQuestionService(repos),
		Replies:   NewReplyService(repos.Replies, repos.Users, repos.Questions),
		Follows:   repos.Follows,
		Likes:     repos.Likes,
	}
}

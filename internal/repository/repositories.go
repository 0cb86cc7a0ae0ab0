package repository

import "gorm.io/gorm"

// Repositories 聚合所有仓储，共享同一个数据库句柄
type Repositories struct {
	Users     UserRepository
	Questions QuestionRepository
	Follows   QuestionFollowRepository
	Replies   ReplyRepository
	Likes     QuestionLikeRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db),
		Questions: NewQuestionRepository(db),
		Follows:   NewQuestionFollowRepository(db),
		Replies:   NewReplyRepository(db),
		Likes:     NewQuestionLikeRepository(db),
	}
}

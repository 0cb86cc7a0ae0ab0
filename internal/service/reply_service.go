package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/d60-Lab/questionsdb/internal/model"
	"github.com/d60-Lab/questionsdb/internal/repository"
	"github.com/d60-Lab/questionsdb/pkg/logger"
)

var ErrReplyCycle = errors.New("reply tree contains a cycle")

// ReplyService 回复及回复树遍历
type ReplyService interface {
	FindByID(ctx context.Context, id int64) (*model.Reply, error)
	FindByUserID(ctx context.Context, userID int64) ([]*model.Reply, error)
	FindByQuestionID(ctx context.Context, questionID int64) ([]*model.Reply, error)
	Author(ctx context.Context, r *model.Reply) (*model.User, error)
	Question(ctx context.Context, r *model.Reply) (*model.Question, error)
	// ParentReply 顶层回复返回 (nil, nil)，不发起查询
	ParentReply(ctx context.Context, r *model.Reply) (*model.Reply, error)
	ChildReplies(ctx context.Context, r *model.Reply) ([]*model.Reply, error)
	// Ancestors 从父回复一直到根，近的在前
	Ancestors(ctx context.Context, r *model.Reply) ([]*model.Reply, error)
	// Descendants 广度优先返回所有后代
	Descendants(ctx context.Context, r *model.Reply) ([]*model.Reply, error)
}

type replyService struct {
	replies   repository.ReplyRepository
	users     repository.UserRepository
	questions repository.QuestionRepository
}

func NewReplyService(replies repository.ReplyRepository, users repository.UserRepository, questions repository.QuestionRepository) ReplyService {
	return &replyService{replies: replies, users: users, questions: questions}
}

func (s *replyService) FindByID(ctx context.Context, id int64) (*model.Reply, error) {
	return s.replies.FindByID(ctx, id)
}

func (s *replyService) FindByUserID(ctx context.Context, userID int64) ([]*model.Reply, error) {
	return s.replies.FindByUserID(ctx, userID)
}

func (s *replyService) FindByQuestionID(ctx context.Context, questionID int64) ([]*model.Reply, error) {
	return s.replies.FindByQuestionID(ctx, questionID)
}

func (s *replyService) Author(ctx context.Context, r *model.Reply) (*model.User, error) {
	if r == nil {
		return nil, nil
	}
	return s.users.FindByID(ctx, r.UserID)
}

func (s *replyService) Question(ctx context.Context, r *model.Reply) (*model.Question, error) {
	if r == nil {
		return nil, nil
	}
	return s.questions.FindByID(ctx, r.QuestionID)
}

func (s *replyService) ParentReply(ctx context.Context, r *model.Reply) (*model.Reply, error) {
	if r == nil || r.ParentID == nil {
		return nil, nil
	}
	return s.replies.FindByID(ctx, *r.ParentID)
}

func (s *replyService) ChildReplies(ctx context.Context, r *model.Reply) ([]*model.Reply, error) {
	if r == nil {
		return []*model.Reply{}, nil
	}
	return s.replies.FindByParentID(ctx, r.ID)
}

func (s *replyService) Ancestors(ctx context.Context, r *model.Reply) ([]*model.Reply, error) {
	res := make([]*model.Reply, 0)
	if r == nil {
		return res, nil
	}
	seen := map[int64]struct{}{r.ID: {}}
	cur := r
	for cur.ParentID != nil {
		pid := *cur.ParentID
		if _, ok := seen[pid]; ok {
			logger.Warn("reply ancestry loops", zap.Int64("reply_id", r.ID), zap.Int64("revisited", pid))
			return res, fmt.Errorf("ancestors of reply %d: %w", r.ID, ErrReplyCycle)
		}
		seen[pid] = struct{}{}

		parent, err := s.replies.FindByID(ctx, pid)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			// dangling parent_id: the chain ends here
			break
		}
		res = append(res, parent)
		cur = parent
	}
	return res, nil
}

func (s *replyService) Descendants(ctx context.Context, r *model.Reply) ([]*model.Reply, error) {
	res := make([]*model.Reply, 0)
	if r == nil {
		return res, nil
	}
	seen := map[int64]struct{}{r.ID: {}}
	queue := []int64{r.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		children, err := s.replies.FindByParentID(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if _, ok := seen[c.ID]; ok {
				logger.Warn("reply descendants loop", zap.Int64("reply_id", r.ID), zap.Int64("revisited", c.ID))
				return res, fmt.Errorf("descendants of reply %d: %w", r.ID, ErrReplyCycle)
			}
			seen[c.ID] = struct{}{}
			res = append(res, c)
			queue = append(queue, c.ID)
		}
	}
	return res, nil
}

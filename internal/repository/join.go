package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/questionsdb/internal/model"
)

// question_follows and question_likes share the (user_id, question_id) shape,
// so the join queries are written once over the link table name. The table
// name is always one of the two constants below, never caller input.
const (
	tableFollows = "question_follows"
	tableLikes   = "question_likes"
)

func usersJoinedBy(ctx context.Context, db *gorm.DB, op, link string, questionID int64) ([]*model.User, error) {
	q := db.WithContext(ctx).
		Model(&model.User{}).
		Select("users.*").
		Joins("JOIN " + link + " ON " + link + ".user_id = users.id").
		Where(link+".question_id = ?", questionID).
		Order("users.id")
	return scanAll[model.User](op, q)
}

func questionsJoinedBy(ctx context.Context, db *gorm.DB, op, link string, userID int64) ([]*model.Question, error) {
	q := db.WithContext(ctx).
		Model(&model.Question{}).
		Select("questions.*").
		Joins("JOIN " + link + " ON " + link + ".question_id = questions.id").
		Where(link+".user_id = ?", userID).
		Order("questions.id")
	return scanAll[model.Question](op, q)
}

// rankQuestions orders questions by their row count in link. n <= 0 yields an
// empty result without touching the store.
func rankQuestions(ctx context.Context, db *gorm.DB, op, link string, n int) ([]*model.Question, error) {
	if n <= 0 {
		return []*model.Question{}, nil
	}
	q := db.WithContext(ctx).
		Model(&model.Question{}).
		Select("questions.*").
		Joins("JOIN " + link + " ON " + link + ".question_id = questions.id").
		Group("questions.id").
		Order("COUNT(" + link + ".id) DESC").
		Order("questions.id ASC").
		Limit(n)
	return scanAll[model.Question](op, q)
}

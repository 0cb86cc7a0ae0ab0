package model

// QuestionLike 点赞关系，与 QuestionFollow 结构相同但语义独立
type QuestionLike struct {
	ID         int64 `json:"id" gorm:"column:id;primaryKey"`
	QuestionID int64 `json:"question_id" gorm:"column:question_id;not null;index"`
	UserID     int64 `json:"user_id" gorm:"column:user_id;not null;index"`
}

func (QuestionLike) TableName() string { return "question_likes" }

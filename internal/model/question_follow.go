package model

// QuestionFollow 关注关系（用户关注问题），users 与 questions 的多对多连接表
type QuestionFollow struct {
	ID         int64 `json:"id" gorm:"column:id;primaryKey"`
	UserID     int64 `json:"user_id" gorm:"column:user_id;not null;index"`
	QuestionID int64 `json:"question_id" gorm:"column:question_id;not null;index"`
}

func (QuestionFollow) TableName() string { return "question_follows" }

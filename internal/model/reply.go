package model

// Reply 回复。ParentID 为空表示顶层回复，否则指向同一问题下的另一条回复
type Reply struct {
	ID         int64  `json:"id" gorm:"column:id;primaryKey"`
	Body       string `json:"body" gorm:"column:body;type:text;not null"`
	QuestionID int64  `json:"question_id" gorm:"column:question_id;not null;index"`
	ParentID   *int64 `json:"parent_id" gorm:"column:parent_id;index"`
	UserID     int64  `json:"user_id" gorm:"column:user_id;not null;index"`
}

func (Reply) TableName() string { return "replies" }

// IsTopLevel reports whether the reply has no parent.
func (r Reply) IsTopLevel() bool { return r.ParentID == nil }

package model

// Question 问题，author_id 指向 users.id
type Question struct {
	ID       int64  `json:"id" gorm:"column:id;primaryKey"`
	Title    string `json:"title" gorm:"column:title;type:text;not null"`
	Body     string `json:"body" gorm:"column:body;type:text;not null"`
	AuthorID int64  `json:"author_id" gorm:"column:author_id;not null;index"`
}

func (Question) TableName() string { return "questions" }

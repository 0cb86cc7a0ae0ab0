package model

// User 用户
type User struct {
	ID    int64  `json:"id" gorm:"column:id;primaryKey"`
	FName string `json:"fname" gorm:"column:fname;type:text;not null"`
	LName string `json:"lname" gorm:"column:lname;type:text;not null"`
}

func (User) TableName() string { return "users" }

// FullName joins first and last name with a space.
func (u User) FullName() string { return u.FName + " " + u.LName }

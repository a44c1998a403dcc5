package entities

import "time"

// WeeklyQuestion is a discussion prompt attached to a week.
type WeeklyQuestion struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	WeekID    uint64    `gorm:"index;not null" json:"weekId" validate:"required"`
	Question  string    `gorm:"type:text" json:"question" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// QuestionAnswer is one user's answer to a weekly question.
// A user answers a given question at most once.
type QuestionAnswer struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	QuestionID uint64    `gorm:"uniqueIndex:idx_answer_question_user;not null" json:"questionId" validate:"required"`
	UserID     uint64    `gorm:"uniqueIndex:idx_answer_question_user;index;not null" json:"userId" validate:"required"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	Answer     string    `gorm:"type:text" json:"answer" validate:"required"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

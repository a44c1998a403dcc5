package entities

import "time"

// Book is the top-level reading selection. At most one book is active at a time.
type Book struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:512" json:"title" validate:"required,max=512"`
	Author      string    `gorm:"size:256" json:"author,omitempty" validate:"max=256"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"index" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Week is a time-boxed segment of a book.
type Week struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	BookID     uint64 `gorm:"index;not null" json:"bookId" validate:"required"`
	WeekNumber int    `gorm:"index" json:"weekNumber" validate:"gte=0"`
	Title      string `gorm:"size:512" json:"title" validate:"max=512"`
	StartDate  *Date  `json:"startDate"`
	EndDate    *Date  `json:"endDate"`
}

// Chapter is a numbered reading unit within a week.
type Chapter struct {
	ID            uint64 `gorm:"primaryKey" json:"id"`
	WeekID        uint64 `gorm:"index;not null" json:"weekId" validate:"required"`
	ChapterNumber int    `json:"chapterNumber" validate:"gte=0"`
	Title         string `gorm:"size:512" json:"title" validate:"max=512"`
}

// Comment is a user's note on a chapter.
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ChapterID uint64    `gorm:"index;not null" json:"chapterId" validate:"required"`
	UserID    uint64    `gorm:"index;not null" json:"userId" validate:"required"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	Content   string    `gorm:"type:text" json:"content" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

package entities

import "time"

type User struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:100;not null" json:"username" validate:"required,max=100"`
	Email          string    `gorm:"size:255" json:"email" validate:"omitempty,email,max=255"`
	PasswordHash   string    `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	CurrentChapter int       `json:"currentChapter" validate:"gte=0"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UserProfile is the public subset of a user returned by register and login.
type UserProfile struct {
	ID             uint64 `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	CurrentChapter int    `json:"currentChapter"`
}

// Profile returns the public subset of the user.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		CurrentChapter: u.CurrentChapter,
	}
}

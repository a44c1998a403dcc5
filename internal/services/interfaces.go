package services

import (
	"context"

	"github.com/bookclub/backend/internal/entities"
)

// Store interfaces are implemented by the repositories in internal/database.
// Lookups return gorm.ErrRecordNotFound for missing rows; services translate
// that into ErrNotFound or ErrValidation depending on the role of the id.

// BookStore persists books.
type BookStore interface {
	CreateBook(ctx context.Context, book *entities.Book) error
	GetBookByID(ctx context.Context, id uint64) (*entities.Book, error)
	GetActiveBook(ctx context.Context) (*entities.Book, error)
	GetAllBooks(ctx context.Context) ([]entities.Book, error)
	SetActiveBook(ctx context.Context, id uint64) error
	DeleteBook(ctx context.Context, id uint64) error
	BookExists(ctx context.Context, id uint64) (bool, error)
}

// WeekStore persists weeks.
type WeekStore interface {
	CreateWeek(ctx context.Context, week *entities.Week) error
	GetWeekByID(ctx context.Context, id uint64) (*entities.Week, error)
	GetWeeksByBook(ctx context.Context, bookID uint64) ([]entities.Week, error)
	UpdateWeek(ctx context.Context, week *entities.Week) error
	DeleteWeek(ctx context.Context, id uint64) error
	WeekExists(ctx context.Context, id uint64) (bool, error)
}

// ChapterStore persists chapters.
type ChapterStore interface {
	CreateChapter(ctx context.Context, chapter *entities.Chapter) error
	GetChapterByID(ctx context.Context, id uint64) (*entities.Chapter, error)
	GetChaptersByWeek(ctx context.Context, weekID uint64) ([]entities.Chapter, error)
	UpdateChapter(ctx context.Context, chapter *entities.Chapter) error
	DeleteChapter(ctx context.Context, id uint64) error
	ChapterExists(ctx context.Context, id uint64) (bool, error)
}

// CommentStore persists chapter comments.
type CommentStore interface {
	CreateComment(ctx context.Context, comment *entities.Comment) error
	GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error)
	GetCommentsByChapter(ctx context.Context, chapterID uint64) ([]entities.Comment, error)
	UpdateComment(ctx context.Context, comment *entities.Comment) error
	DeleteComment(ctx context.Context, id uint64) error
}

// UserStore persists users.
type UserStore interface {
	CreateUser(ctx context.Context, user *entities.User) error
	GetUserByID(ctx context.Context, id uint64) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	GetAllUsers(ctx context.Context) ([]entities.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UserExists(ctx context.Context, id uint64) (bool, error)
	UpdateUser(ctx context.Context, user *entities.User) error
	DeleteUser(ctx context.Context, id uint64) error
}

// QuestionStore persists weekly questions.
type QuestionStore interface {
	CreateQuestion(ctx context.Context, question *entities.WeeklyQuestion) error
	GetQuestionByID(ctx context.Context, id uint64) (*entities.WeeklyQuestion, error)
	GetQuestionsByWeek(ctx context.Context, weekID uint64) ([]entities.WeeklyQuestion, error)
	UpdateQuestion(ctx context.Context, question *entities.WeeklyQuestion) error
	DeleteQuestion(ctx context.Context, id uint64) error
	QuestionExists(ctx context.Context, id uint64) (bool, error)
}

// AnswerStore persists answers to weekly questions.
type AnswerStore interface {
	CreateAnswer(ctx context.Context, answer *entities.QuestionAnswer) error
	GetAnswerByID(ctx context.Context, id uint64) (*entities.QuestionAnswer, error)
	GetAnswersByQuestion(ctx context.Context, questionID uint64) ([]entities.QuestionAnswer, error)
	GetAnswerByQuestionAndUser(ctx context.Context, questionID, userID uint64) (*entities.QuestionAnswer, error)
	UpdateAnswer(ctx context.Context, answer *entities.QuestionAnswer) error
	DeleteAnswer(ctx context.Context, id uint64) error
}

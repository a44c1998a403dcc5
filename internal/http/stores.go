package http

import (
	"context"

	"github.com/bookclub/backend/internal/entities"
)

// This file consolidates the service interfaces used by HTTP controllers.
// Each controller depends only on the operations it serves; the concrete
// implementations live in internal/services.

// BookService serves /api/books.
type BookService interface {
	GetCurrentBook(ctx context.Context) (*entities.Book, error)
	GetAllBooks(ctx context.Context) ([]entities.Book, error)
	GetBookByID(ctx context.Context, id uint64) (*entities.Book, error)
	CreateBook(ctx context.Context, book *entities.Book) (*entities.Book, error)
	SetActiveBook(ctx context.Context, id uint64) error
	GetWeeksForBook(ctx context.Context, bookID uint64) ([]entities.Week, error)
	DeleteBook(ctx context.Context, id uint64) error
}

// WeekService serves /api/weeks.
type WeekService interface {
	CreateWeek(ctx context.Context, week *entities.Week) (*entities.Week, error)
	GetWeekByID(ctx context.Context, id uint64) (*entities.Week, error)
	GetWeeksByBook(ctx context.Context, bookID uint64) ([]entities.Week, error)
	GetChaptersForWeek(ctx context.Context, weekID uint64) ([]entities.Chapter, error)
	UpdateWeek(ctx context.Context, id uint64, details entities.Week) (*entities.Week, error)
	DeleteWeek(ctx context.Context, id uint64) error
}

// ChapterService serves /api/chapters.
type ChapterService interface {
	CreateChapter(ctx context.Context, chapter *entities.Chapter) (*entities.Chapter, error)
	GetChapterByID(ctx context.Context, id uint64) (*entities.Chapter, error)
	GetChaptersByWeek(ctx context.Context, weekID uint64) ([]entities.Chapter, error)
	UpdateChapter(ctx context.Context, id uint64, details entities.Chapter) (*entities.Chapter, error)
	DeleteChapter(ctx context.Context, id uint64) error
}

// CommentService serves /api/comments.
type CommentService interface {
	CreateComment(ctx context.Context, comment *entities.Comment) (*entities.Comment, error)
	GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error)
	GetCommentsByChapter(ctx context.Context, chapterID uint64) ([]entities.Comment, error)
	UpdateComment(ctx context.Context, id uint64, content string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, id uint64) error
}

// UserService serves /api/users.
type UserService interface {
	CreateUser(ctx context.Context, user *entities.User, password string) (*entities.User, error)
	Authenticate(ctx context.Context, username, password string) (*entities.User, error)
	GetUserByID(ctx context.Context, id uint64) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	GetAllUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, id uint64, details entities.User) (*entities.User, error)
	UpdateProgress(ctx context.Context, id uint64, chapterNumber int) (*entities.User, error)
	ChangeUsername(ctx context.Context, id uint64, username string) (*entities.User, error)
	ChangePassword(ctx context.Context, id uint64, current, next string) error
	DeleteUser(ctx context.Context, id uint64) error
}

// QuestionService serves /api/questions.
type QuestionService interface {
	CreateQuestion(ctx context.Context, question *entities.WeeklyQuestion) (*entities.WeeklyQuestion, error)
	GetQuestionByID(ctx context.Context, id uint64) (*entities.WeeklyQuestion, error)
	GetQuestionsByWeek(ctx context.Context, weekID uint64) ([]entities.WeeklyQuestion, error)
	GetAnswersForQuestion(ctx context.Context, questionID uint64) ([]entities.QuestionAnswer, error)
	UpdateQuestion(ctx context.Context, id uint64, text string) (*entities.WeeklyQuestion, error)
	DeleteQuestion(ctx context.Context, id uint64) error
}

// AnswerService serves /api/answers and POST /api/questions/answers.
type AnswerService interface {
	CreateAnswer(ctx context.Context, answer *entities.QuestionAnswer) (*entities.QuestionAnswer, error)
	GetAnswerByID(ctx context.Context, id uint64) (*entities.QuestionAnswer, error)
	GetAnswersByQuestion(ctx context.Context, questionID uint64) ([]entities.QuestionAnswer, error)
	GetAnswerByQuestionAndUser(ctx context.Context, questionID, userID uint64) (*entities.QuestionAnswer, error)
	UpdateAnswer(ctx context.Context, id uint64, text string) (*entities.QuestionAnswer, error)
	DeleteAnswer(ctx context.Context, id uint64) error
}

// Pinger checks store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bookclub/backend/internal/config"
	"github.com/bookclub/backend/internal/database/answers"
	"github.com/bookclub/backend/internal/database/books"
	"github.com/bookclub/backend/internal/database/chapters"
	"github.com/bookclub/backend/internal/database/comments"
	"github.com/bookclub/backend/internal/database/dbtest"
	"github.com/bookclub/backend/internal/database/questions"
	"github.com/bookclub/backend/internal/database/users"
	"github.com/bookclub/backend/internal/database/weeks"
	"github.com/bookclub/backend/internal/entities"
	"github.com/bookclub/backend/internal/services"
)

type testEnv struct {
	db        *gorm.DB
	books     *services.BookService
	weeks     *services.WeekService
	chapters  *services.ChapterService
	comments  *services.CommentService
	users     *services.UserService
	questions *services.QuestionService
	answers   *services.AnswerService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := dbtest.New(t).DB

	bookRepo := books.NewRepository(db)
	weekRepo := weeks.NewRepository(db)
	chapterRepo := chapters.NewRepository(db)
	commentRepo := comments.NewRepository(db)
	userRepo := users.NewRepository(db)
	questionRepo := questions.NewRepository(db)
	answerRepo := answers.NewRepository(db)

	return &testEnv{
		db:        db,
		books:     services.NewBookService(bookRepo, weekRepo),
		weeks:     services.NewWeekService(weekRepo, bookRepo, chapterRepo),
		chapters:  services.NewChapterService(chapterRepo, weekRepo),
		comments:  services.NewCommentService(commentRepo, chapterRepo, userRepo),
		users:     services.NewUserService(userRepo, config.Auth{BcryptCost: bcrypt.MinCost}),
		questions: services.NewQuestionService(questionRepo, weekRepo, answerRepo),
		answers:   services.NewAnswerService(answerRepo, questionRepo, userRepo),
	}
}

func (e *testEnv) createBook(t *testing.T, title string, active bool) *entities.Book {
	t.Helper()
	book, err := e.books.CreateBook(context.Background(), &entities.Book{Title: title, IsActive: active})
	require.NoError(t, err)
	return book
}

func (e *testEnv) createWeek(t *testing.T, bookID uint64, number int) *entities.Week {
	t.Helper()
	week, err := e.weeks.CreateWeek(context.Background(), &entities.Week{BookID: bookID, WeekNumber: number})
	require.NoError(t, err)
	return week
}

func (e *testEnv) createChapter(t *testing.T, weekID uint64, number int) *entities.Chapter {
	t.Helper()
	chapter, err := e.chapters.CreateChapter(context.Background(), &entities.Chapter{WeekID: weekID, ChapterNumber: number})
	require.NoError(t, err)
	return chapter
}

func (e *testEnv) createUser(t *testing.T, username string) *entities.User {
	t.Helper()
	user, err := e.users.CreateUser(context.Background(), &entities.User{Username: username}, "correct-horse")
	require.NoError(t, err)
	return user
}

func (e *testEnv) createQuestion(t *testing.T, weekID uint64, text string) *entities.WeeklyQuestion {
	t.Helper()
	question, err := e.questions.CreateQuestion(context.Background(), &entities.WeeklyQuestion{WeekID: weekID, Question: text})
	require.NoError(t, err)
	return question
}

func (e *testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

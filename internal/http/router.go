package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bookclub/backend/internal/config"
	"github.com/bookclub/backend/internal/logging"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(logging.Middleware(cfg.Logger))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.CORS))

	health := NewHealthController(cfg.Database, cfg.Books, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Status)

	api := router.Group("/api")

	books := NewBooksController(cfg.Books)
	api.GET("/books", books.GetAllBooks)
	api.GET("/books/current", books.GetCurrentBook)
	api.GET("/books/:id", books.GetBook)
	api.GET("/books/:id/weeks", books.GetWeeks)
	api.POST("/books", books.CreateBook)
	api.PUT("/books/:id/activate", books.SetActiveBook)
	api.DELETE("/books/:id", books.DeleteBook)

	weeks := NewWeeksController(cfg.Weeks)
	api.POST("/weeks", weeks.CreateWeek)
	api.GET("/weeks/:id", weeks.GetWeek)
	api.GET("/weeks/book/:bookId", weeks.GetWeeksByBook)
	api.GET("/weeks/:id/chapters", weeks.GetChapters)
	api.PUT("/weeks/:id", weeks.UpdateWeek)
	api.DELETE("/weeks/:id", weeks.DeleteWeek)

	chapters := NewChaptersController(cfg.Chapters)
	api.POST("/chapters", chapters.CreateChapter)
	api.GET("/chapters/:id", chapters.GetChapter)
	api.GET("/chapters/week/:weekId", chapters.GetChaptersByWeek)
	api.PUT("/chapters/:id", chapters.UpdateChapter)
	api.DELETE("/chapters/:id", chapters.DeleteChapter)

	comments := NewCommentsController(cfg.Comments)
	api.POST("/comments", comments.CreateComment)
	api.GET("/comments/:id", comments.GetComment)
	api.GET("/comments/chapter/:chapterId", comments.GetCommentsByChapter)
	api.PUT("/comments/:id", comments.UpdateComment)
	api.DELETE("/comments/:id", comments.DeleteComment)

	users := NewUsersController(cfg.Users)
	api.POST("/users/register", users.Register)
	api.POST("/users/login", users.Login)
	api.POST("/users", users.CreateUser)
	api.GET("/users", users.GetAllUsers)
	api.GET("/users/username", users.GetUserByUsername)
	api.GET("/users/username/:username", users.GetUserByUsername)
	api.GET("/users/:id", users.GetUser)
	api.PUT("/users/:id", users.UpdateUser)
	api.PUT("/users/:id/progress/:chapterNumber", users.UpdateProgress)
	api.PUT("/users/:id/username", users.ChangeUsername)
	api.PUT("/users/:id/password", users.ChangePassword)
	api.DELETE("/users/:id", users.DeleteUser)

	questions := NewQuestionsController(cfg.Questions)
	answers := NewAnswersController(cfg.Answers)
	api.POST("/questions", questions.CreateQuestion)
	api.POST("/questions/answers", answers.CreateAnswer)
	api.GET("/questions/:id", questions.GetQuestion)
	api.GET("/questions/week/:weekId", questions.GetQuestionsByWeek)
	api.GET("/questions/:id/answers", questions.GetAnswers)
	api.PUT("/questions/:id", questions.UpdateQuestion)
	api.DELETE("/questions/:id", questions.DeleteQuestion)

	api.POST("/answers", answers.CreateAnswer)
	api.GET("/answers/:id", answers.GetAnswer)
	api.GET("/answers/question/:questionId", answers.GetAnswersByQuestion)
	api.GET("/answers/question/:questionId/user/:userId", answers.GetAnswerByQuestionAndUser)
	api.PUT("/answers/:id", answers.UpdateAnswer)
	api.DELETE("/answers/:id", answers.DeleteAnswer)

	return router
}

func corsMiddleware(cfg config.CORS) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(corsConfig)
}

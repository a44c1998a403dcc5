package http

import (
	"github.com/rs/zerolog"

	"github.com/bookclub/backend/internal/config"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Services
	Books     BookService
	Weeks     WeekService
	Chapters  ChapterService
	Comments  CommentService
	Users     UserService
	Questions QuestionService
	Answers   AnswerService

	// Health checks
	Database Pinger

	// Middleware
	Logger zerolog.Logger
	CORS   config.CORS

	// Application info
	Version string
}

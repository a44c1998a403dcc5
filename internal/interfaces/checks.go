package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/bookclub/backend/internal/database"
	"github.com/bookclub/backend/internal/database/answers"
	"github.com/bookclub/backend/internal/database/books"
	"github.com/bookclub/backend/internal/database/chapters"
	"github.com/bookclub/backend/internal/database/comments"
	"github.com/bookclub/backend/internal/database/questions"
	"github.com/bookclub/backend/internal/database/users"
	"github.com/bookclub/backend/internal/database/weeks"
	"github.com/bookclub/backend/internal/http"
	"github.com/bookclub/backend/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.BookStore = (*books.Repository)(nil)
var _ services.WeekStore = (*weeks.Repository)(nil)
var _ services.ChapterStore = (*chapters.Repository)(nil)
var _ services.CommentStore = (*comments.Repository)(nil)
var _ services.UserStore = (*users.Repository)(nil)
var _ services.QuestionStore = (*questions.Repository)(nil)
var _ services.AnswerStore = (*answers.Repository)(nil)

// =============================================================================
// Service Layer
// =============================================================================

var _ http.BookService = (*services.BookService)(nil)
var _ http.WeekService = (*services.WeekService)(nil)
var _ http.ChapterService = (*services.ChapterService)(nil)
var _ http.CommentService = (*services.CommentService)(nil)
var _ http.UserService = (*services.UserService)(nil)
var _ http.QuestionService = (*services.QuestionService)(nil)
var _ http.AnswerService = (*services.AnswerService)(nil)

// =============================================================================
// Health Checks
// =============================================================================

var _ http.Pinger = (*database.Database)(nil)

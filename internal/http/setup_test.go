package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookclub/backend/internal/config"
	"github.com/bookclub/backend/internal/database"
	"github.com/bookclub/backend/internal/database/answers"
	"github.com/bookclub/backend/internal/database/books"
	"github.com/bookclub/backend/internal/database/chapters"
	"github.com/bookclub/backend/internal/database/comments"
	"github.com/bookclub/backend/internal/database/dbtest"
	"github.com/bookclub/backend/internal/database/questions"
	"github.com/bookclub/backend/internal/database/users"
	"github.com/bookclub/backend/internal/database/weeks"
	"github.com/bookclub/backend/internal/services"
)

// setupTestRouter wires the full stack on a throwaway sqlite database.
func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := dbtest.New(t)

	bookRepo := books.NewRepository(db.DB)
	weekRepo := weeks.NewRepository(db.DB)
	chapterRepo := chapters.NewRepository(db.DB)
	commentRepo := comments.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	questionRepo := questions.NewRepository(db.DB)
	answerRepo := answers.NewRepository(db.DB)

	router := NewRouter(RouterConfig{
		Books:     services.NewBookService(bookRepo, weekRepo),
		Weeks:     services.NewWeekService(weekRepo, bookRepo, chapterRepo),
		Chapters:  services.NewChapterService(chapterRepo, weekRepo),
		Comments:  services.NewCommentService(commentRepo, chapterRepo, userRepo),
		Users:     services.NewUserService(userRepo, config.Auth{BcryptCost: bcrypt.MinCost}),
		Questions: services.NewQuestionService(questionRepo, weekRepo, answerRepo),
		Answers:   services.NewAnswerService(answerRepo, questionRepo, userRepo),
		Database:  db,
		Logger:    zerolog.Nop(),
		CORS:      config.CORS{AllowedOrigins: []string{"*"}},
		Version:   "test",
	})
	return router, db
}

// doJSON sends body encoded as JSON. A string body is sent verbatim.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func mustCreate[T any](t *testing.T, router *gin.Engine, path string, body any) T {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[T](t, w)
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

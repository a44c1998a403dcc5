package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclub/backend/internal/entities"
	"github.com/bookclub/backend/internal/services"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

type fakeCurrentBook struct {
	book *entities.Book
	err  error
}

func (f fakeCurrentBook) GetCurrentBook(context.Context) (*entities.Book, error) {
	return f.book, f.err
}

func TestHealthController_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dune := &entities.Book{ID: 4, Title: "Dune"}

	tests := []struct {
		name       string
		db         Pinger
		books      currentBookFinder
		wantStatus int
		wantHealth string
		wantCheck  string
		wantClub   *ClubStatus
	}{
		{"returns healthy when database is connected", fakePinger{}, fakeCurrentBook{book: dune}, http.StatusOK, "healthy", "ok", &ClubStatus{ActiveBookID: 4, ActiveBookTitle: "Dune"}},
		{"reports no active book", fakePinger{}, fakeCurrentBook{err: services.ErrNotFound}, http.StatusOK, "healthy", "ok", &ClubStatus{}},
		{"omits club when lookup fails", fakePinger{}, fakeCurrentBook{err: errors.New("boom")}, http.StatusOK, "healthy", "ok", nil},
		{"returns unhealthy when ping fails", fakePinger{err: errors.New("connection refused")}, fakeCurrentBook{book: dune}, http.StatusServiceUnavailable, "unhealthy", "error", nil},
		{"reports missing database", nil, nil, http.StatusOK, "healthy", "not configured", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewHealthController(tt.db, tt.books, "1.0.0")
			router := gin.New()
			router.GET("/health", controller.Status)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/health", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			response := decode[HealthResponse](t, w)
			assert.Equal(t, tt.wantHealth, response.Status)
			assert.Equal(t, "1.0.0", response.Version)
			assert.Equal(t, tt.wantCheck, response.Checks["database"].Status)
			assert.Equal(t, tt.wantClub, response.Club)
			assert.NotEmpty(t, response.Time)
			assert.NotEmpty(t, response.Uptime)
		})
	}
}

func TestHealthController_PingError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewHealthController(fakePinger{err: errors.New("connection refused")}, nil, "")
	router := gin.New()
	router.GET("/ping", controller.Status)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "connection refused", decode[HealthResponse](t, w).Checks["database"].Error)
}

func TestRouter_HealthAndCORS(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{"/health", "/ping"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		response := decode[HealthResponse](t, w)
		assert.Equal(t, "ok", response.Checks["database"].Status)
		require.NotNil(t, response.Club)
		assert.Zero(t, response.Club.ActiveBookID)
	}

	book := mustCreate[entities.Book](t, router, "/api/books", map[string]any{"title": "Middlemarch", "isActive": true})
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, book.ID, decode[HealthResponse](t, w).Club.ActiveBookID)

	req, _ := http.NewRequest(http.MethodOptions, "/api/books", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

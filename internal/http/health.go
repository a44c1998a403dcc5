package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookclub/backend/internal/entities"
	"github.com/bookclub/backend/internal/services"
)

const healthCheckTimeout = 2 * time.Second

// currentBookFinder is the slice of BookService the health report needs.
type currentBookFinder interface {
	GetCurrentBook(ctx context.Context) (*entities.Book, error)
}

type CheckResult struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latencyMs"`
}

// ClubStatus summarizes what the club is reading. It never affects health.
type ClubStatus struct {
	ActiveBookID    uint64 `json:"activeBookId,omitempty"`
	ActiveBookTitle string `json:"activeBookTitle,omitempty"`
}

type HealthResponse struct {
	Status  string                 `json:"status"`
	Time    string                 `json:"time"`
	Version string                 `json:"version,omitempty"`
	Uptime  string                 `json:"uptime"`
	Checks  map[string]CheckResult `json:"checks"`
	Club    *ClubStatus            `json:"club,omitempty"`
}

type HealthController struct {
	db      Pinger
	books   currentBookFinder
	version string
	started time.Time
}

func NewHealthController(db Pinger, books currentBookFinder, version string) *HealthController {
	return &HealthController{
		db:      db,
		books:   books,
		version: version,
		started: time.Now(),
	}
}

// Status answers 503 when the database ping fails or times out.
func (h *HealthController) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	database := h.pingDatabase(ctx)
	response := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().UTC().Format(time.RFC3339),
		Version: h.version,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
		Checks:  map[string]CheckResult{"database": database},
	}

	if database.Status == "error" {
		response.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	response.Club = h.clubStatus(ctx)
	c.JSON(http.StatusOK, response)
}

func (h *HealthController) pingDatabase(ctx context.Context) CheckResult {
	if h.db == nil {
		return CheckResult{Status: "not configured"}
	}
	start := time.Now()
	err := h.db.Ping(ctx)
	result := CheckResult{Status: "ok", LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
	}
	return result
}

func (h *HealthController) clubStatus(ctx context.Context) *ClubStatus {
	if h.books == nil {
		return nil
	}
	book, err := h.books.GetCurrentBook(ctx)
	switch {
	case err == nil:
		return &ClubStatus{ActiveBookID: book.ID, ActiveBookTitle: book.Title}
	case errors.Is(err, services.ErrNotFound):
		return &ClubStatus{}
	default:
		return nil
	}
}

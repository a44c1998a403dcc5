package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type WeeksController struct {
	weeks WeekService
}

func NewWeeksController(weeks WeekService) *WeeksController {
	return &WeeksController{weeks: weeks}
}

// POST /api/weeks
func (wc *WeeksController) CreateWeek(c *gin.Context) {
	var req weekRequest
	if !bindJSON(c, &req) {
		return
	}

	week, err := wc.weeks.CreateWeek(c.Request.Context(), req.entity())
	if err != nil {
		respondServiceError(c, err, "create week")
		return
	}
	respondCreated(c, week)
}

// GET /api/weeks/:id
func (wc *WeeksController) GetWeek(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	week, err := wc.weeks.GetWeekByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get week")
		return
	}
	c.JSON(http.StatusOK, week)
}

// GetWeeksByBook returns the weeks of a book ordered by week number
// GET /api/weeks/book/:bookId
func (wc *WeeksController) GetWeeksByBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	weeks, err := wc.weeks.GetWeeksByBook(c.Request.Context(), bookID)
	if err != nil {
		respondServiceError(c, err, "get weeks by book")
		return
	}
	c.JSON(http.StatusOK, weeks)
}

// GetChapters returns the chapters of a week ordered by chapter number
// GET /api/weeks/:id/chapters
func (wc *WeeksController) GetChapters(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	chapters, err := wc.weeks.GetChaptersForWeek(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get chapters for week")
		return
	}
	c.JSON(http.StatusOK, chapters)
}

// UpdateWeek changes title, dates and week number
// PUT /api/weeks/:id
func (wc *WeeksController) UpdateWeek(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req weekRequest
	if !bindJSON(c, &req) {
		return
	}

	week, err := wc.weeks.UpdateWeek(c.Request.Context(), id, *req.entity())
	if err != nil {
		respondServiceError(c, err, "update week")
		return
	}
	c.JSON(http.StatusOK, week)
}

// DELETE /api/weeks/:id
func (wc *WeeksController) DeleteWeek(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := wc.weeks.DeleteWeek(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete week")
		return
	}
	respondSuccess(c, "week deleted")
}

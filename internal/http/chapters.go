package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChaptersController struct {
	chapters ChapterService
}

func NewChaptersController(chapters ChapterService) *ChaptersController {
	return &ChaptersController{chapters: chapters}
}

// POST /api/chapters
func (cc *ChaptersController) CreateChapter(c *gin.Context) {
	var req chapterRequest
	if !bindJSON(c, &req) {
		return
	}

	chapter, err := cc.chapters.CreateChapter(c.Request.Context(), req.entity())
	if err != nil {
		respondServiceError(c, err, "create chapter")
		return
	}
	respondCreated(c, chapter)
}

// GET /api/chapters/:id
func (cc *ChaptersController) GetChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	chapter, err := cc.chapters.GetChapterByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get chapter")
		return
	}
	c.JSON(http.StatusOK, chapter)
}

// GET /api/chapters/week/:weekId
func (cc *ChaptersController) GetChaptersByWeek(c *gin.Context) {
	weekID, ok := parseIDParam(c, "weekId")
	if !ok {
		return
	}

	chapters, err := cc.chapters.GetChaptersByWeek(c.Request.Context(), weekID)
	if err != nil {
		respondServiceError(c, err, "get chapters by week")
		return
	}
	c.JSON(http.StatusOK, chapters)
}

// PUT /api/chapters/:id
func (cc *ChaptersController) UpdateChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req chapterRequest
	if !bindJSON(c, &req) {
		return
	}

	chapter, err := cc.chapters.UpdateChapter(c.Request.Context(), id, *req.entity())
	if err != nil {
		respondServiceError(c, err, "update chapter")
		return
	}
	c.JSON(http.StatusOK, chapter)
}

// DELETE /api/chapters/:id
func (cc *ChaptersController) DeleteChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.chapters.DeleteChapter(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete chapter")
		return
	}
	respondSuccess(c, "chapter deleted")
}

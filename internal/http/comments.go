package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CommentsController struct {
	comments CommentService
}

func NewCommentsController(comments CommentService) *CommentsController {
	return &CommentsController{comments: comments}
}

// CreateComment posts a comment on a chapter
// POST /api/comments
func (cc *CommentsController) CreateComment(c *gin.Context) {
	var req commentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := cc.comments.CreateComment(c.Request.Context(), req.entity())
	if err != nil {
		respondServiceError(c, err, "create comment")
		return
	}
	respondCreated(c, comment)
}

// GET /api/comments/:id
func (cc *CommentsController) GetComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := cc.comments.GetCommentByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// GetCommentsByChapter returns a chapter's comments, newest first
// GET /api/comments/chapter/:chapterId
func (cc *CommentsController) GetCommentsByChapter(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	comments, err := cc.comments.GetCommentsByChapter(c.Request.Context(), chapterID)
	if err != nil {
		respondServiceError(c, err, "get comments by chapter")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// UpdateComment replaces the content; the body is the new text
// PUT /api/comments/:id
func (cc *CommentsController) UpdateComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	content, ok := readText(c, "content")
	if !ok {
		return
	}

	comment, err := cc.comments.UpdateComment(c.Request.Context(), id, content)
	if err != nil {
		respondServiceError(c, err, "update comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DELETE /api/comments/:id
func (cc *CommentsController) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.comments.DeleteComment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete comment")
		return
	}
	respondSuccess(c, "comment deleted")
}

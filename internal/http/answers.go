package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AnswersController struct {
	answers AnswerService
}

func NewAnswersController(answers AnswerService) *AnswersController {
	return &AnswersController{answers: answers}
}

// CreateAnswer records a user's answer; a second answer to the same question conflicts
// POST /api/answers
// POST /api/questions/answers
func (ac *AnswersController) CreateAnswer(c *gin.Context) {
	var req answerRequest
	if !bindJSON(c, &req) {
		return
	}

	answer, err := ac.answers.CreateAnswer(c.Request.Context(), req.entity())
	if err != nil {
		respondServiceError(c, err, "create answer")
		return
	}
	respondCreated(c, answer)
}

// GET /api/answers/:id
func (ac *AnswersController) GetAnswer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	answer, err := ac.answers.GetAnswerByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get answer")
		return
	}
	c.JSON(http.StatusOK, answer)
}

// GET /api/answers/question/:questionId
func (ac *AnswersController) GetAnswersByQuestion(c *gin.Context) {
	questionID, ok := parseIDParam(c, "questionId")
	if !ok {
		return
	}

	answers, err := ac.answers.GetAnswersByQuestion(c.Request.Context(), questionID)
	if err != nil {
		respondServiceError(c, err, "get answers by question")
		return
	}
	c.JSON(http.StatusOK, answers)
}

// GET /api/answers/question/:questionId/user/:userId
func (ac *AnswersController) GetAnswerByQuestionAndUser(c *gin.Context) {
	questionID, ok := parseIDParam(c, "questionId")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	answer, err := ac.answers.GetAnswerByQuestionAndUser(c.Request.Context(), questionID, userID)
	if err != nil {
		respondServiceError(c, err, "get answer by question and user")
		return
	}
	c.JSON(http.StatusOK, answer)
}

// UpdateAnswer replaces the text; the body is the new answer
// PUT /api/answers/:id
func (ac *AnswersController) UpdateAnswer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	text, ok := readText(c, "answer")
	if !ok {
		return
	}

	answer, err := ac.answers.UpdateAnswer(c.Request.Context(), id, text)
	if err != nil {
		respondServiceError(c, err, "update answer")
		return
	}
	c.JSON(http.StatusOK, answer)
}

// DELETE /api/answers/:id
func (ac *AnswersController) DeleteAnswer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.answers.DeleteAnswer(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete answer")
		return
	}
	respondSuccess(c, "answer deleted")
}

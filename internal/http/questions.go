package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuestionsController struct {
	questions QuestionService
}

func NewQuestionsController(questions QuestionService) *QuestionsController {
	return &QuestionsController{questions: questions}
}

// POST /api/questions
func (qc *QuestionsController) CreateQuestion(c *gin.Context) {
	var req questionRequest
	if !bindJSON(c, &req) {
		return
	}

	question, err := qc.questions.CreateQuestion(c.Request.Context(), req.entity())
	if err != nil {
		respondServiceError(c, err, "create question")
		return
	}
	respondCreated(c, question)
}

// GET /api/questions/:id
func (qc *QuestionsController) GetQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	question, err := qc.questions.GetQuestionByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get question")
		return
	}
	c.JSON(http.StatusOK, question)
}

// GET /api/questions/week/:weekId
func (qc *QuestionsController) GetQuestionsByWeek(c *gin.Context) {
	weekID, ok := parseIDParam(c, "weekId")
	if !ok {
		return
	}

	questions, err := qc.questions.GetQuestionsByWeek(c.Request.Context(), weekID)
	if err != nil {
		respondServiceError(c, err, "get questions by week")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GET /api/questions/:id/answers
func (qc *QuestionsController) GetAnswers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	answers, err := qc.questions.GetAnswersForQuestion(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get answers for question")
		return
	}
	c.JSON(http.StatusOK, answers)
}

// UpdateQuestion replaces the text; the body is the new question
// PUT /api/questions/:id
func (qc *QuestionsController) UpdateQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	text, ok := readText(c, "question")
	if !ok {
		return
	}

	question, err := qc.questions.UpdateQuestion(c.Request.Context(), id, text)
	if err != nil {
		respondServiceError(c, err, "update question")
		return
	}
	c.JSON(http.StatusOK, question)
}

// DELETE /api/questions/:id
func (qc *QuestionsController) DeleteQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := qc.questions.DeleteQuestion(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete question")
		return
	}
	respondSuccess(c, "question deleted")
}

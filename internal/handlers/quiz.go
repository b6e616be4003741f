package handlers

import (
	"net/http"
	"strconv"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type StartQuizRequest struct {
	SubjectID       uint `json:"subject_id" binding:"required"`
	TotalQuestions  int  `json:"total_questions" binding:"required,min=1"`
	DurationSeconds int  `json:"duration_seconds" binding:"required,min=1"`
}

// StartQuiz godoc
// @Summary      Start a quiz session
// @Description  Open an active session and draw the question set
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body StartQuizRequest true "Quiz parameters"
// @Success      201 {object} services.StartedQuiz
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/quizzes/start [post]
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req StartQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	started, err := h.quizService.StartQuiz(userID, req.SubjectID, req.TotalQuestions, req.DurationSeconds)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, started)
}

type ResponseRequest struct {
	QuestionID       uint   `json:"question_id" binding:"required"`
	UserAnswer       string `json:"user_answer" binding:"required"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
	Flagged          bool   `json:"flagged"`
}

// RecordResponse godoc
// @Summary      Record an answer within a session
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body ResponseRequest true "Response data"
// @Success      200 {object} models.QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/quizzes/{id}/responses [post]
func (h *QuizHandler) RecordResponse(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req ResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.quizService.RecordResponse(uint(sessionID), userID, services.ResponseInput{
		QuestionID:       req.QuestionID,
		UserAnswer:       req.UserAnswer,
		TimeSpentSeconds: req.TimeSpentSeconds,
		Flagged:          req.Flagged,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SubmitQuiz godoc
// @Summary      Finalize a session
// @Description  Grade the session and write its immutable result
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} models.QuizResult
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	result, err := h.quizService.SubmitQuiz(uint(sessionID), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AbandonQuiz godoc
// @Summary      Abandon a session
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/quizzes/{id}/abandon [post]
func (h *QuizHandler) AbandonQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	if _, err := h.quizService.AbandonQuiz(uint(sessionID), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "session abandoned"})
}

// GetSession godoc
// @Summary      Get an in-flight session with its responses
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} services.SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/quizzes/{id} [get]
func (h *QuizHandler) GetSession(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	state, err := h.quizService.GetSession(uint(sessionID), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/policy"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type QuestionRequest struct {
	SubjectID     uint   `json:"subject_id" binding:"required"`
	QuestionText  string `json:"question_text" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
	Explanation   string `json:"explanation"`
	Difficulty    string `json:"difficulty"`
	Topic         string `json:"topic"`
	ImageURL      string `json:"image_url"`
}

func (r QuestionRequest) toInput() services.QuestionInput {
	return services.QuestionInput{
		SubjectID:     r.SubjectID,
		QuestionText:  r.QuestionText,
		OptionA:       r.OptionA,
		OptionB:       r.OptionB,
		OptionC:       r.OptionC,
		OptionD:       r.OptionD,
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
		Difficulty:    r.Difficulty,
		Topic:         r.Topic,
		ImageURL:      r.ImageURL,
	}
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Filter by subject_id, difficulty and topic. Answers are
// @Description  stripped unless the caller may view them.
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        subject_id query int false "Subject ID"
// @Param        difficulty query string false "easy, medium or hard"
// @Param        topic query string false "Topic"
// @Param        limit query int false "Max rows"
// @Success      200 {array} models.Question
// @Router       /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	subjectID, _ := strconv.ParseUint(c.Query("subject_id"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))

	questions, err := h.questionService.ListQuestions(services.QuestionFilter{
		SubjectID:  uint(subjectID),
		Difficulty: c.Query("difficulty"),
		Topic:      c.Query("topic"),
		Limit:      limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if !policy.Allow(c.GetString("role"), policy.ViewAnswers) {
		questions = services.Sanitize(questions)
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body QuestionRequest true "Question data"
// @Success      201 {object} models.Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.questionService.CreateQuestion(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} models.Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.questionService.UpdateQuestion(uint(questionID), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	if err := h.questionService.DeleteQuestion(uint(questionID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}

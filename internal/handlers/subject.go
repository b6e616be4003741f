package handlers

import (
	"net/http"
	"strconv"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/services"

	"github.com/gin-gonic/gin"
)

type SubjectHandler struct {
	subjectService *services.SubjectService
}

func NewSubjectHandler(subjectService *services.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// ListSubjects godoc
// @Summary      List subjects
// @Description  All quiz subjects with their cached question counts
// @Tags         subjects
// @Produce      json
// @Success      200 {array} models.Subject
// @Router       /api/subjects [get]
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjectService.ListSubjects()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// GetSubject godoc
// @Summary      Get a subject
// @Tags         subjects
// @Produce      json
// @Param        id path int true "Subject ID"
// @Success      200 {object} models.Subject
// @Failure      404 {object} ErrorResponse
// @Router       /api/subjects/{id} [get]
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	subjectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid subject id"})
		return
	}

	subject, err := h.subjectService.GetSubject(uint(subjectID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subject)
}

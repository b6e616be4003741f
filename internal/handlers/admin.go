package handlers

import (
	"net/http"
	"strconv"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userService    *services.UserService
	subjectService *services.SubjectService
}

func NewAdminHandler(userService *services.UserService, subjectService *services.SubjectService) *AdminHandler {
	return &AdminHandler{userService: userService, subjectService: subjectService}
}

// ListUsers godoc
// @Summary      List all accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.User
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required" example:"viewer"`
}

// UpdateUserRole godoc
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Param        request body UpdateRoleRequest true "New role"
// @Success      200 {object} models.User
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateRole(uint(userID), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete an account
// @Tags         admin
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.userService.DeleteUser(uint(userID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}

type SubjectRequest struct {
	Name        string `json:"name" binding:"required" example:"Literature"`
	Description string `json:"description" example:"Literature in English"`
	Icon        string `json:"icon"`
}

// CreateSubject godoc
// @Summary      Create a subject
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubjectRequest true "Subject data"
// @Success      201 {object} models.Subject
// @Failure      409 {object} ErrorResponse
// @Router       /api/admin/subjects [post]
func (h *AdminHandler) CreateSubject(c *gin.Context) {
	var req SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subject, err := h.subjectService.CreateSubject(req.Name, req.Description, req.Icon)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subject)
}

// UpdateSubject godoc
// @Summary      Update a subject
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subject ID"
// @Param        request body SubjectRequest true "Subject data"
// @Success      200 {object} models.Subject
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/subjects/{id} [put]
func (h *AdminHandler) UpdateSubject(c *gin.Context) {
	subjectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid subject id"})
		return
	}

	var req SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subject, err := h.subjectService.UpdateSubject(uint(subjectID), req.Name, req.Description, req.Icon)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subject)
}

// DeleteSubject godoc
// @Summary      Delete a subject and its questions
// @Tags         admin
// @Security     BearerAuth
// @Param        id path int true "Subject ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/subjects/{id} [delete]
func (h *AdminHandler) DeleteSubject(c *gin.Context) {
	subjectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid subject id"})
		return
	}

	if err := h.subjectService.DeleteSubject(uint(subjectID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "subject deleted"})
}

// QuestionStats godoc
// @Summary      Question inventory per subject and difficulty
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.QuestionStat
// @Router       /api/admin/questions/stats [get]
func (h *AdminHandler) QuestionStats(c *gin.Context) {
	stats, err := h.userService.QuestionStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

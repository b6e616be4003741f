package handlers

import (
	"net/http"
	"strconv"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	resultService *services.ResultService
}

func NewResultHandler(resultService *services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// ListResults godoc
// @Summary      List the caller's past results
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.ResultSummary
// @Router       /api/results [get]
func (h *ResultHandler) ListResults(c *gin.Context) {
	userID := c.GetUint("user_id")

	results, err := h.resultService.ListResults(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetResult godoc
// @Summary      A single result with its per-question breakdown
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Result ID"
// @Success      200 {object} services.ResultDetail
// @Failure      404 {object} ErrorResponse
// @Router       /api/results/{id} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	userID := c.GetUint("user_id")
	resultID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid result id"})
		return
	}

	detail, err := h.resultService.GetResult(uint(resultID), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Leaderboard godoc
// @Summary      Ranked standings across all users
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max rows (default 20)"
// @Success      200 {array} services.Standing
// @Router       /api/results/leaderboard [get]
func (h *ResultHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	standings, err := h.resultService.Leaderboard(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, standings)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview godoc
// @Summary      Aggregate performance overview for the caller
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.Overview
// @Router       /api/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	userID := c.GetUint("user_id")

	overview, err := h.analyticsService.Overview(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// BySubject godoc
// @Summary      Per-subject accuracy for the caller
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.SubjectAccuracy
// @Router       /api/analytics/subjects [get]
func (h *AnalyticsHandler) BySubject(c *gin.Context) {
	userID := c.GetUint("user_id")

	rows, err := h.analyticsService.BySubject(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Trend godoc
// @Summary      Daily performance trend for the caller
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days query int false "Window in days (default 30)"
// @Success      200 {array} services.TrendPoint
// @Router       /api/analytics/trend [get]
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	userID := c.GetUint("user_id")
	days, _ := strconv.Atoi(c.Query("days"))

	points, err := h.analyticsService.Trend(userID, days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

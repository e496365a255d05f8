package handlers

import (
	"strconv"

	"github.com/mitchell1972/examCoachNG/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// PlatformStats godoc
// @Summary      Platform overview
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response{data=services.PlatformStats}
// @Failure      500 {object} Response
// @Router       /api/analytics/platform-stats [get]
func (h *AnalyticsHandler) PlatformStats(c *gin.Context) {
	stats, err := h.analyticsService.PlatformStats()
	if err != nil {
		respondError(c, err, "Failed to fetch platform statistics")
		return
	}
	respondOK(c, stats)
}

// SubjectPerformance godoc
// @Summary      Per-subject performance
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days query int false "Trailing window in days (default 30)"
// @Success      200 {object} Response{data=[]services.SubjectPerformance}
// @Failure      500 {object} Response
// @Router       /api/analytics/subject-performance [get]
func (h *AnalyticsHandler) SubjectPerformance(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	rows, err := h.analyticsService.SubjectPerformanceStats(days)
	if err != nil {
		respondError(c, err, "Failed to fetch subject performance analytics")
		return
	}
	respondOK(c, rows)
}

// DifficultyStats godoc
// @Summary      Per-difficulty accuracy
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        subjectCode query string false "Limit to one subject"
// @Success      200 {object} Response{data=[]services.DifficultyStat}
// @Failure      500 {object} Response
// @Router       /api/analytics/difficulty-stats [get]
func (h *AnalyticsHandler) DifficultyStats(c *gin.Context) {
	stats, err := h.analyticsService.DifficultyStats(c.Query("subjectCode"))
	if err != nil {
		respondError(c, err, "Failed to fetch difficulty statistics")
		return
	}
	respondOK(c, stats)
}

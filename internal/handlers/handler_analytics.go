package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/dto"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticsHandler serves the spending-analysis report.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvc
	goalService      portssvc.GoalSvc
}

func newAnalyticsHandler(as portssvc.AnalyticsSvc, gs portssvc.GoalSvc) *analyticsHandler {
	return &analyticsHandler{analyticsService: as, goalService: gs}
}

// registerAnalyticsRoutes registers the analytics route.
func registerAnalyticsRoutes(rg *gin.RouterGroup, as portssvc.AnalyticsSvc, gs portssvc.GoalSvc) {
	h := newAnalyticsHandler(as, gs)
	rg.GET("/analytics", h.getAnalytics)
}

func (h *analyticsHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	analysis, err := h.analyticsService.AnalyzeSpendingHabits(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to analyze spending", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze spending"})
		return
	}
	if analysis == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Недостаточно данных для анализа. Сгенерируйте демо-данные."})
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		logger.Warn("Failed to list goals for recommendations", slog.String("error", err.Error()))
		goals = nil
	}

	recommendations := h.analyticsService.GenerateRecommendations(analysis, goals)
	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(analysis, recommendations))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/customer-journey/backend/internal/http/middleware"
)

// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /api/dashboard/stats [get]
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.CRM.GetDashboardStats(c.Request.Context(), middleware.AccessToken(c))
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Calls per hour of day
// @Tags dashboard
// @Produce json
// @Success 200 {array} models.HourlyTrend
// @Router /api/dashboard/trends/hourly [get]
func (h *Handler) HourlyTrends(c *gin.Context) {
	points, err := h.CRM.GetHourlyTrends(c.Request.Context(), middleware.AccessToken(c))
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, points)
}

// @Summary Calls per day
// @Tags dashboard
// @Produce json
// @Success 200 {array} models.DailyTrend
// @Router /api/dashboard/trends/daily [get]
func (h *Handler) DailyTrends(c *gin.Context) {
	points, err := h.CRM.GetDailyTrends(c.Request.Context(), middleware.AccessToken(c))
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, points)
}

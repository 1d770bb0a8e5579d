package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/customer-journey/backend/internal/http/middleware"
)

// @Summary Customer journey
// @Description Calls, installations, visits, website sessions and digital interactions, newest first
// @Tags journey
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} models.JourneyEvent
// @Router /api/journey/{id} [get]
func (h *Handler) Journey(c *gin.Context) {
	events, err := h.CRM.GetJourney(c.Request.Context(), middleware.AccessToken(c), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, events)
}

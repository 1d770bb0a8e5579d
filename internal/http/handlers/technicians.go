package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/customer-journey/backend/internal/http/middleware"
)

// @Summary Active technician visits
// @Description Planned and underway visits with nullable coordinates
// @Tags technicians
// @Produce json
// @Success 200 {array} models.TechnicianVisit
// @Router /api/technicians/visits [get]
func (h *Handler) TechnicianVisits(c *gin.Context) {
	visits, err := h.CRM.ListTechnicianVisits(c.Request.Context(), middleware.AccessToken(c))
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, visits)
}

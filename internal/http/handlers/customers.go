package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/customer-journey/backend/internal/http/middleware"
)

// @Summary List customers
// @Tags customers
// @Produce json
// @Param X-Forwarded-Access-Token header string false "Forwarded warehouse token"
// @Success 200 {array} models.Customer
// @Failure 500 {object} ErrorBody
// @Router /api/customers [get]
func (h *Handler) CustomersList(c *gin.Context) {
	items, err := h.CRM.ListCustomers(c.Request.Context(), middleware.AccessToken(c))
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} ErrorBody
// @Router /api/customers/{id} [get]
func (h *Handler) CustomerDetails(c *gin.Context) {
	customer, err := h.CRM.GetCustomer(c.Request.Context(), middleware.AccessToken(c), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary Get customer summary
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} models.CustomerSummary
// @Failure 404 {object} ErrorBody
// @Router /api/customers/{id}/summary [get]
func (h *Handler) CustomerSummary(c *gin.Context) {
	summary, err := h.CRM.GetCustomerSummary(c.Request.Context(), middleware.AccessToken(c), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Summary not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Get next best action
// @Description Highest priority pending or in-progress action, or a placeholder message
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} models.NextBestAction
// @Router /api/customers/{id}/next-action [get]
func (h *Handler) CustomerNextAction(c *gin.Context) {
	action, err := h.CRM.GetNextBestAction(c.Request.Context(), middleware.AccessToken(c), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Customer not found")
		return
	}
	if action == nil {
		c.JSON(http.StatusOK, MessageResponse{Message: "No pending actions"})
		return
	}
	c.JSON(http.StatusOK, action)
}

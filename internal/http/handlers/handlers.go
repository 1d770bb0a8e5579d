package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/customer-journey/backend/internal/models"
	"github.com/customer-journey/backend/internal/service"
)

// CRM is the read surface the handlers need from the warehouse adapter.
type CRM interface {
	ListCustomers(ctx context.Context, token string) ([]models.Customer, error)
	GetCustomer(ctx context.Context, token, customerID string) (models.Customer, error)
	GetCustomerSummary(ctx context.Context, token, customerID string) (models.CustomerSummary, error)
	GetNextBestAction(ctx context.Context, token, customerID string) (*models.NextBestAction, error)
	GetJourney(ctx context.Context, token, customerID string) ([]models.JourneyEvent, error)
	GetDashboardStats(ctx context.Context, token string) (models.DashboardStats, error)
	GetHourlyTrends(ctx context.Context, token string) ([]models.HourlyTrend, error)
	GetDailyTrends(ctx context.Context, token string) ([]models.DailyTrend, error)
	ListTechnicianVisits(ctx context.Context, token string) ([]models.TechnicianVisit, error)
	Mode() service.Mode
}

type Handler struct {
	CRM          CRM
	Logger       zerolog.Logger
	FrontendDist string
}

type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, ErrorBody{Error: ErrorDetail{Code: code, Message: message, Details: details}})
}

// fail maps a service error to a response. notFound is the message used for
// service.ErrNotFound.
func (h *Handler) fail(c *gin.Context, err error, notFound string) {
	if errors.Is(err, service.ErrNotFound) {
		writeError(c, http.StatusNotFound, "NOT_FOUND", notFound, nil)
		return
	}
	h.Logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err.Error())
}

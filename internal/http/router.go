package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/customer-journey/backend/internal/config"
	"github.com/customer-journey/backend/internal/http/handlers"
	"github.com/customer-journey/backend/internal/http/middleware"

	_ "github.com/customer-journey/backend/docs"
)

func Router(cfg config.Config, crm handlers.CRM, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.AccessTokenHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := cfg.AllowedOrigins(); origins == nil {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.ForwardedAccessToken())

	h := &handlers.Handler{
		CRM:          crm,
		Logger:       logger,
		FrontendDist: cfg.FrontendDist,
	}

	api := r.Group("/api")
	{
		api.GET("/customers", h.CustomersList)
		api.GET("/customers/", h.CustomersList)
		api.GET("/customers/:id", h.CustomerDetails)
		api.GET("/customers/:id/summary", h.CustomerSummary)
		api.GET("/customers/:id/next-action", h.CustomerNextAction)
		api.GET("/journey/:id", h.Journey)
		api.GET("/dashboard/stats", h.DashboardStats)
		api.GET("/dashboard/trends/hourly", h.HourlyTrends)
		api.GET("/dashboard/trends/daily", h.DailyTrends)
		api.GET("/technicians/visits", h.TechnicianVisits)
		api.GET("/technicians/visits/", h.TechnicianVisits)
		api.GET("/health", h.Health)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.NoRoute(h.NoRoute)

	return r
}

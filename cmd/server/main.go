package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/customer-journey/backend/internal/config"
	httpapi "github.com/customer-journey/backend/internal/http"
	"github.com/customer-journey/backend/internal/logger"
	"github.com/customer-journey/backend/internal/service"
	"github.com/customer-journey/backend/internal/warehouse"
)

// @title Customer Journey API
// @version 1.0
// @description Read-only CRM API backed by a SQL warehouse or canned fixtures
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	l := logger.New(cfg.Env, cfg.LogLevel)

	dialer, err := warehouse.NewDialer(cfg)
	switch {
	case errors.Is(err, warehouse.ErrNotConfigured):
		l.Info().Str("driver", cfg.WarehouseDriver).Msg("warehouse not configured, using fixture mode")
	case err != nil:
		l.Warn().Err(err).Str("driver", cfg.WarehouseDriver).Msg("invalid warehouse target, using fixture mode")
		dialer = nil
	default:
		l.Info().Str("driver", cfg.WarehouseDriver).Int64("workers", cfg.WarehouseWorkers).Msg("using live warehouse mode")
	}

	crm := service.New(dialer, nil, cfg.WarehouseWorkers, l)
	router := httpapi.Router(cfg, crm, l)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		l.Info().Str("port", cfg.Port).Str("mode", crm.Mode().String()).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Error().Err(err).Msg("shutdown")
	}
	l.Info().Msg("server stopped")
}

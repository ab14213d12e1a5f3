package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/logischolar/analytics-backend/internal/config"
	"github.com/logischolar/analytics-backend/internal/dataset"
	"github.com/logischolar/analytics-backend/internal/handler"
	"github.com/logischolar/analytics-backend/internal/logger"
	"github.com/logischolar/analytics-backend/internal/router"
	"github.com/logischolar/analytics-backend/internal/service"
	"github.com/logischolar/analytics-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("data_file", cfg.DataFile).
		Msg("Starting LogiScholar Analytics Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Load Dataset ──────────────────────────────────────────────────
	// The table is read once and injected into every service. A load
	// failure is fatal to the session: the process keeps serving, but only
	// the blocking error state.
	source := dataset.NewSource(cfg.DataFile, log)

	var r *gin.Engine
	table, err := source.Load()
	if err != nil {
		log.Error().Err(err).Msg("Dataset unavailable; serving blocking error state")
		r = router.SetupDegradedRouter(cfg, err)
	} else {
		// ─── Initialize Services ──────────────────────────────────────
		analyticsService := service.NewAnalyticsService(table, log)
		forecastService := service.NewForecastService(log)
		studentService := service.NewStudentService(table, log)

		// ─── Initialize Handlers ──────────────────────────────────────
		handlers := &router.Handlers{
			System:     handler.NewSystemHandler(table),
			Dashboard:  handler.NewDashboardHandler(analyticsService),
			Department: handler.NewDepartmentHandler(),
			Forecast:   handler.NewForecastHandler(forecastService),
			Student:    handler.NewStudentHandler(studentService),
		}

		r = router.SetupRouter(handlers, cfg)
	}

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

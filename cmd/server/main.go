package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agriportal/analytics-api/internal/api"
	"github.com/agriportal/analytics-api/internal/core/ports"
	"github.com/agriportal/analytics-api/internal/core/service"
	"github.com/agriportal/analytics-api/internal/infrastructure/agridata"
	"github.com/agriportal/analytics-api/internal/infrastructure/config"
	"github.com/agriportal/analytics-api/internal/infrastructure/registry"
	"github.com/agriportal/analytics-api/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Credential registry ---
	var creds ports.CredentialRegistry
	switch cfg.CredentialBackend {
	case config.BackendBcrypt:
		creds, err = registry.NewBcrypt(registry.DemoSeed())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build bcrypt registry")
		}
	default:
		creds = registry.NewMemory(registry.DemoSeed())
	}

	// --- Core services ---
	sessions := service.NewSessionService(creds, cfg.AuthLatency, log)
	analytics := service.NewAnalyticsService(agridata.NewStore(time.Now()), log)

	// --- HTTP server ---
	e := api.NewRouter(sessions, analytics, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("credential_backend", cfg.CredentialBackend).
			Dur("auth_latency", cfg.AuthLatency).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

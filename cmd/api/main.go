package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"vitrine-backend/internal/config"
	"vitrine-backend/pkg/container"
	"vitrine-backend/pkg/logger"
)

func main() {
	// .env for local development; production uses the real environment
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if envErr != nil {
		log.Warn().Msg("No .env file found, using system environment variables")
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("API stopped with error")
		stop()
		os.Exit(1)
	}
}

// run builds the container and serves until ctx is cancelled
func run(ctx context.Context, cfg *config.Config) error {
	log.Info().
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("Starting Vitrine Admin API")

	appContainer, err := container.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer appContainer.Cleanup()

	return Serve(ctx, newHTTPServer(cfg.App.Port, SetupRouter(appContainer)))
}

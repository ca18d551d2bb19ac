package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"vitrine-backend/internal/config"
	"vitrine-backend/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "info")
		log.Fatal().Err(err).Msg("[Config] Failed to load")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if envErr != nil {
		log.Warn().Msg("No .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workerCfg := loadConfig(cfg)

	handlers, err := initializeHandlers(ctx, workerCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("[Worker] Failed to initialize handlers")
	}

	probes, err := newProbes(ctx, workerCfg, handlers.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("[Startup] Health check failed")
	}
	defer probes.Close()
	healthSrv := probes.Serve(workerCfg.HealthPort)

	srv, err := setupAsynqServer(workerCfg, handlers)
	if err != nil {
		log.Fatal().Err(err).Msg("[Worker] Failed to start")
	}

	<-ctx.Done()
	log.Info().Msg("[Shutdown] Gracefully stopping...")

	srv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("[Shutdown] Health server")
	}
	log.Info().Msg("[Shutdown] Stopped")
}

package main

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"vitrine-backend/internal/config"
)

// Config holds the worker settings
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MinIO         config.MinIOConfig
	Concurrency   int
	HealthPort    string
}

// loadConfig derives the worker settings from the shared configuration
func loadConfig(cfg *config.Config) *Config {
	workerCfg := &Config{
		RedisAddr:     cfg.Redis.Host,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		MinIO:         cfg.MinIO,
		Concurrency:   envInt("WORKER_CONCURRENCY", 5),
		HealthPort:    envString("WORKER_HEALTH_PORT", "9999"),
	}

	log.Info().
		Str("redis", workerCfg.RedisAddr).
		Str("minio", workerCfg.MinIO.Endpoint).
		Int("concurrency", workerCfg.Concurrency).
		Msg("[Config] Worker configuration loaded")

	return workerCfg
}

func envString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

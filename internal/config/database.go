package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"vitrine-backend/internal/infrastructure/database"
)

// envReader parses typed values and remembers every malformed one,
// so a bad .env is reported in a single error.
type envReader struct {
	errs []error
}

func (r *envReader) number(key string, def int) int {
	raw := getEnv(key, strconv.Itoa(def))
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
		return def
	}
	return v
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, def.String())
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
		return def
	}
	return v
}

func (r *envReader) err() error {
	return errors.Join(r.errs...)
}

// LoadDatabaseConfig reads the Postgres settings used by the postgres seed provider
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var env envReader

	cfg := &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              env.number("DB_PORT", 5432),
		Username:          getEnv("DB_USER", "vitrine"),
		Password:          getEnv("DB_PASSWORD", "secret"),
		DBName:            getEnv("DB_NAME", "vitrine"),
		MaxConns:          int32(env.number("DB_MAX_CONNECTIONS", 4)),
		MinConns:          int32(env.number("DB_MIN_CONNECTIONS", 1)),
		MaxConnLifetime:   env.duration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   env.duration("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: env.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MaxRetries:        env.number("DB_MAX_RETRIES", 3),
		RetryDelay:        env.duration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout:    env.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}

	if err := env.err(); err != nil {
		return nil, err
	}
	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds the whole application configuration.
// It is populated from environment variables (optionally loaded from .env by main).
type Config struct {
	App        AppConfig
	Redis      RedisConfig
	JWT        JWTConfig
	MinIO      MinIOConfig
	Seed       SeedConfig
	Dashboard  DashboardConfig
	Enterprise EnterpriseConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string

	// AllowedOrigins lists the admin front-end origins for CORS ("*" = any)
	AllowedOrigins []string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // minutes
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SeedConfig selects the initial data provider for the six collections.
type SeedConfig struct {
	Source    string // static, postgres
	Bootstrap bool   // postgres only: insert the demo catalogue into an empty table
}

type DashboardConfig struct {
	CacheTTL time.Duration
}

// EnterpriseConfig is the read-only company profile shown on the dashboard.
type EnterpriseConfig struct {
	ID        int
	Email     string
	Name      string
	LogoURL   string
	Address   string
	ZipCode   string
	City      string
	Phone     string
	Facebook  string
	Twitter   string
	Instagram string
	TikTok    string
	Website   string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Vitrine Admin API"),
			Environment:    getEnv("APP_ENV", "development"),
			Port:           getEnv("APP_PORT", "8080"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 8*60), // one working day
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "vitrine"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Seed: SeedConfig{
			Source:    getEnv("SEED_SOURCE", "static"),
			Bootstrap: getEnvBool("SEED_BOOTSTRAP", true),
		},
		Dashboard: DashboardConfig{
			CacheTTL: getEnvDuration("DASHBOARD_CACHE_TTL", 5*time.Minute),
		},
		Enterprise: EnterpriseConfig{
			ID:        getEnvInt("ENTERPRISE_ID", 1),
			Email:     getEnv("ENTERPRISE_EMAIL", "contact@entreprise.com"),
			Name:      getEnv("ENTERPRISE_NAME", "Mon Entreprise"),
			LogoURL:   getEnv("ENTERPRISE_LOGO_URL", "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=200"),
			Address:   getEnv("ENTERPRISE_ADDRESS", "123 Rue de la Paix"),
			ZipCode:   getEnv("ENTERPRISE_ZIP_CODE", "75001"),
			City:      getEnv("ENTERPRISE_CITY", "Paris"),
			Phone:     getEnv("ENTERPRISE_PHONE", "+33 1 23 45 67 89"),
			Facebook:  getEnv("ENTERPRISE_FACEBOOK", "https://facebook.com/monentreprise"),
			Twitter:   getEnv("ENTERPRISE_TWITTER", "https://twitter.com/monentreprise"),
			Instagram: getEnv("ENTERPRISE_INSTAGRAM", "https://instagram.com/monentreprise"),
			TikTok:    getEnv("ENTERPRISE_TIKTOK", "https://tiktok.com/@monentreprise"),
			Website:   getEnv("ENTERPRISE_WEBSITE", "https://monentreprise.com"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted safely
func (c *Config) Validate() error {
	switch c.Seed.Source {
	case "static", "postgres":
	default:
		return fmt.Errorf("SEED_SOURCE must be static or postgres (got %q)", c.Seed.Source)
	}

	if c.JWT.AccessTokenExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY must be positive")
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.MinIO.AccessKey == "minioadmin" {
			fmt.Println("WARNING: MinIO default credentials in production - media uploads are exposed")
		}
	}

	return nil
}

// AccessTokenTTL returns the access token lifetime
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpiry) * time.Minute
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

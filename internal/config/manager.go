// Package config provides environment-backed configuration management.
package config

import (
	"fmt"
	"os"
	"strings"

	"langart/internal/types"
	"langart/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Constants for configuration validation
const (
	minJWTSecretLength = 16
	minPort            = 1
	maxPort            = 65535
)

// Manager implements types.ConfigManager backed by environment variables.
type Manager struct {
	config *Config
}

// Config holds the complete application configuration.
type Config struct {
	Server      types.ServerConfig      `json:"server"`
	Auth        types.AuthConfig        `json:"auth"`
	Database    types.DatabaseConfig    `json:"database"`
	RedisDSN    string                  `json:"redis_dsn"`
	CORS        types.CORSConfig        `json:"cors"`
	Log         types.LogConfig         `json:"log"`
	Performance types.PerformanceConfig `json:"performance"`
	Cache       types.CacheConfig       `json:"cache"`
	Environment string                  `json:"environment"`
}

// NewManager creates a configuration manager, loading .env when present.
func NewManager() (types.ConfigManager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	environment := utils.GetEnvOrDefault("APP_ENV", "development")

	config := &Config{
		Server: types.ServerConfig{
			Host:                    utils.GetEnvOrDefault("HOST", "0.0.0.0"),
			Port:                    utils.ParseInteger(os.Getenv("PORT"), 3001),
			ReadTimeout:             utils.ParseInteger(os.Getenv("SERVER_READ_TIMEOUT"), 60),
			WriteTimeout:            utils.ParseInteger(os.Getenv("SERVER_WRITE_TIMEOUT"), 60),
			IdleTimeout:             utils.ParseInteger(os.Getenv("SERVER_IDLE_TIMEOUT"), 120),
			GracefulShutdownTimeout: utils.ParseInteger(os.Getenv("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT"), 10),
		},
		Auth: types.AuthConfig{
			JWTSecret:       os.Getenv("JWT_SECRET"),
			SessionTTLHours: utils.ParseInteger(os.Getenv("SESSION_TTL_HOURS"), 24),
			AdminUsername:   utils.GetEnvOrDefault("ADMIN_USERNAME", "admin"),
			AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
			CookieSecure:    environment == "production",
		},
		Database: types.DatabaseConfig{
			DSN: utils.GetEnvOrDefault("DATABASE_DSN", "./data/langart.db"),
		},
		RedisDSN: os.Getenv("REDIS_DSN"),
		CORS: types.CORSConfig{
			Enabled:          utils.ParseBoolean(os.Getenv("ENABLE_CORS"), true),
			AllowedOrigins:   utils.SplitAndTrim(utils.GetEnvOrDefault("ALLOWED_ORIGINS", "*"), ","),
			AllowedMethods:   utils.SplitAndTrim(utils.GetEnvOrDefault("ALLOWED_METHODS", "GET,POST,PUT,PATCH,DELETE,OPTIONS"), ","),
			AllowedHeaders:   utils.SplitAndTrim(utils.GetEnvOrDefault("ALLOWED_HEADERS", "Content-Type,Authorization,Accept-Language"), ","),
			AllowCredentials: utils.ParseBoolean(os.Getenv("ALLOW_CREDENTIALS"), true),
		},
		Log: types.LogConfig{
			Level:      utils.GetEnvOrDefault("LOG_LEVEL", "info"),
			Format:     utils.GetEnvOrDefault("LOG_FORMAT", "text"),
			EnableFile: utils.ParseBoolean(os.Getenv("LOG_ENABLE_FILE"), false),
			FilePath:   utils.GetEnvOrDefault("LOG_FILE_PATH", "./logs/app.log"),
		},
		Performance: types.PerformanceConfig{
			MaxConcurrentRequests: utils.ParseInteger(os.Getenv("MAX_CONCURRENT_REQUESTS"), 100),
		},
		Cache: types.CacheConfig{
			TTLHours: utils.ParseInteger(os.Getenv("CACHE_TTL_HOURS"), 24),
		},
		Environment: environment,
	}

	manager := &Manager{config: config}

	if err := manager.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return manager, nil
}

// Validate checks the configuration for invalid or missing values.
func (m *Manager) Validate() error {
	var errs []string

	if m.config.Server.Port < minPort || m.config.Server.Port > maxPort {
		errs = append(errs, fmt.Sprintf("invalid port: %d", m.config.Server.Port))
	}

	if m.config.Auth.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	} else if len(m.config.Auth.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Sprintf("JWT_SECRET must be at least %d characters", minJWTSecretLength))
	}

	if m.config.Auth.SessionTTLHours <= 0 {
		errs = append(errs, fmt.Sprintf("invalid session TTL: %d", m.config.Auth.SessionTTLHours))
	}

	if m.config.Database.DSN == "" {
		errs = append(errs, "DATABASE_DSN is required")
	}

	if m.config.Performance.MaxConcurrentRequests < 1 {
		errs = append(errs, fmt.Sprintf("invalid max concurrent requests: %d", m.config.Performance.MaxConcurrentRequests))
	}

	if m.config.Cache.TTLHours < 1 {
		errs = append(errs, fmt.Sprintf("invalid cache TTL hours: %d", m.config.Cache.TTLHours))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}

	return nil
}

// GetServerConfig returns the HTTP server configuration.
func (m *Manager) GetServerConfig() types.ServerConfig {
	return m.config.Server
}

// GetAuthConfig returns the admin authentication configuration.
func (m *Manager) GetAuthConfig() types.AuthConfig {
	return m.config.Auth
}

// GetDatabaseConfig returns the database configuration.
func (m *Manager) GetDatabaseConfig() types.DatabaseConfig {
	return m.config.Database
}

// GetRedisDSN returns the Redis DSN, empty when the memory store is used.
func (m *Manager) GetRedisDSN() string {
	return m.config.RedisDSN
}

// GetCORSConfig returns the CORS configuration.
func (m *Manager) GetCORSConfig() types.CORSConfig {
	return m.config.CORS
}

// GetLogConfig returns the logging configuration.
func (m *Manager) GetLogConfig() types.LogConfig {
	return m.config.Log
}

// GetPerformanceConfig returns the performance configuration.
func (m *Manager) GetPerformanceConfig() types.PerformanceConfig {
	return m.config.Performance
}

// GetCacheConfig returns the public read cache configuration.
func (m *Manager) GetCacheConfig() types.CacheConfig {
	return m.config.Cache
}

// IsProduction reports whether the app runs in production mode.
func (m *Manager) IsProduction() bool {
	return m.config.Environment == "production"
}

// DisplayServerConfig logs the effective configuration at startup.
func (m *Manager) DisplayServerConfig() {
	storeType := "memory"
	if m.config.RedisDSN != "" {
		storeType = "redis"
	}

	logrus.Info("Server configuration:")
	logrus.Infof("  Listen: %s:%d", m.config.Server.Host, m.config.Server.Port)
	logrus.Infof("  Environment: %s", m.config.Environment)
	logrus.Infof("  Cache store: %s (TTL %dh)", storeType, m.config.Cache.TTLHours)
	logrus.Infof("  CORS enabled: %t", m.config.CORS.Enabled)
	logrus.Infof("  Log level: %s", m.config.Log.Level)
}

package config

import (
	"langart/internal/types"
)

// MockConfig implements types.ConfigManager for testing
type MockConfig struct {
	JWTSecretValue     string
	AdminUsernameValue string
	AdminPasswordValue string
	CacheTTLHours      int
}

// GetServerConfig returns mock server configuration
func (m *MockConfig) GetServerConfig() types.ServerConfig {
	return types.ServerConfig{
		Host:                    "0.0.0.0",
		Port:                    3001,
		ReadTimeout:             60,
		WriteTimeout:            60,
		IdleTimeout:             120,
		GracefulShutdownTimeout: 10,
	}
}

// GetAuthConfig returns mock auth configuration
func (m *MockConfig) GetAuthConfig() types.AuthConfig {
	return types.AuthConfig{
		JWTSecret:       m.JWTSecretValue,
		SessionTTLHours: 24,
		AdminUsername:   m.AdminUsernameValue,
		AdminPassword:   m.AdminPasswordValue,
		CookieSecure:    false,
	}
}

// GetDatabaseConfig returns mock database configuration
func (m *MockConfig) GetDatabaseConfig() types.DatabaseConfig {
	return types.DatabaseConfig{
		DSN: ":memory:",
	}
}

// GetRedisDSN returns mock Redis DSN
func (m *MockConfig) GetRedisDSN() string {
	return ""
}

// GetCORSConfig returns mock CORS configuration
func (m *MockConfig) GetCORSConfig() types.CORSConfig {
	return types.CORSConfig{
		Enabled:          false,
		AllowedOrigins:   []string{},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}
}

// GetLogConfig returns mock log configuration
func (m *MockConfig) GetLogConfig() types.LogConfig {
	return types.LogConfig{
		Level:      "info",
		Format:     "text",
		EnableFile: false,
		FilePath:   "./data/logs/app.log",
	}
}

// GetPerformanceConfig returns mock performance configuration
func (m *MockConfig) GetPerformanceConfig() types.PerformanceConfig {
	return types.PerformanceConfig{
		MaxConcurrentRequests: 100,
	}
}

// GetCacheConfig returns mock cache configuration
func (m *MockConfig) GetCacheConfig() types.CacheConfig {
	ttl := m.CacheTTLHours
	if ttl == 0 {
		ttl = 24
	}
	return types.CacheConfig{
		TTLHours: ttl,
	}
}

// IsProduction returns mock environment mode
func (m *MockConfig) IsProduction() bool {
	return false
}

// Validate validates the configuration
func (m *MockConfig) Validate() error {
	return nil
}

// DisplayServerConfig displays server configuration (no-op for mock)
func (m *MockConfig) DisplayServerConfig() {
	// No-op for testing
}

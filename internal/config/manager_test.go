package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setBaseEnv sets the minimum environment for a valid configuration.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-jwt-secret-minimum-16-chars")
	t.Setenv("DATABASE_DSN", ":memory:")
}

func TestNewManager_Defaults(t *testing.T) {
	setBaseEnv(t)

	manager, err := NewManager()
	require.NoError(t, err)

	server := manager.GetServerConfig()
	assert.Equal(t, "0.0.0.0", server.Host)
	assert.Equal(t, 3001, server.Port)

	auth := manager.GetAuthConfig()
	assert.Equal(t, 24, auth.SessionTTLHours)
	assert.Equal(t, "admin", auth.AdminUsername)
	assert.False(t, auth.CookieSecure, "cookie is not Secure outside production")

	assert.Equal(t, ":memory:", manager.GetDatabaseConfig().DSN)
	assert.Empty(t, manager.GetRedisDSN())
	assert.Equal(t, 24, manager.GetCacheConfig().TTLHours)
	assert.False(t, manager.IsProduction())
}

func TestNewManager_ProductionSecureCookie(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")

	manager, err := NewManager()
	require.NoError(t, err)

	assert.True(t, manager.IsProduction())
	assert.True(t, manager.GetAuthConfig().CookieSecure)
}

func TestNewManager_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_TTL_HOURS", "48")
	t.Setenv("CACHE_TTL_HOURS", "6")
	t.Setenv("ALLOWED_ORIGINS", "https://langart.uz, https://admin.langart.uz")

	manager, err := NewManager()
	require.NoError(t, err)

	assert.Equal(t, 8080, manager.GetServerConfig().Port)
	assert.Equal(t, 48, manager.GetAuthConfig().SessionTTLHours)
	assert.Equal(t, 6, manager.GetCacheConfig().TTLHours)
	assert.Equal(t,
		[]string{"https://langart.uz", "https://admin.langart.uz"},
		manager.GetCORSConfig().AllowedOrigins)
}

func TestNewManager_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"missing_jwt_secret", "JWT_SECRET", ""},
		{"short_jwt_secret", "JWT_SECRET", "too-short"},
		{"invalid_port", "PORT", "99999"},
		{"zero_session_ttl", "SESSION_TTL_HOURS", "0"},
		{"zero_cache_ttl", "CACHE_TTL_HOURS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := NewManager()
			assert.Error(t, err)
		})
	}
}

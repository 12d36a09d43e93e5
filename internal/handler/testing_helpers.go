package handler

import (
	"testing"
	"time"

	"langart/internal/auth"
	"langart/internal/config"
	"langart/internal/i18n"
	"langart/internal/models"
	"langart/internal/services"
	"langart/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing (pure Go, no CGO)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(models.All()...)
	require.NoError(t, err)

	return db
}

// setupTestServer creates a test server with minimal dependencies
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	require.NoError(t, i18n.Init())

	db := setupTestDB(t)

	mockConfig := &config.MockConfig{
		JWTSecretValue:     "test-jwt-secret-12345678",
		AdminUsernameValue: "admin",
		AdminPasswordValue: "admin-password",
	}

	memStore := store.NewMemoryStore()
	t.Cleanup(func() { _ = memStore.Close() })

	return &Server{
		DB:                db,
		config:            mockConfig,
		TokenIssuer:       auth.NewTokenIssuer(mockConfig.JWTSecretValue, 24*time.Hour),
		UserService:       services.NewUserService(db),
		SiteConfigService: services.NewSiteConfigService(db),
		StatsService:      services.NewStatsService(db),
		ContentCache:      services.NewContentCache(memStore, mockConfig),
	}
}

// seedTestAdmin creates an admin user and returns its credentials.
func seedTestAdmin(t *testing.T, server *Server) (username, password string) {
	t.Helper()

	username, password = "admin", "admin-password"
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, server.DB.Create(&models.User{
		Username:     username,
		PasswordHash: hash,
	}).Error)
	return username, password
}

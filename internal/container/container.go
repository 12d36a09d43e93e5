// Package container builds the dependency injection container.
package container

import (
	"time"

	"langart/internal/app"
	"langart/internal/auth"
	"langart/internal/config"
	"langart/internal/db"
	"langart/internal/handler"
	"langart/internal/router"
	"langart/internal/services"
	"langart/internal/store"
	"langart/internal/types"

	"go.uber.org/dig"
)

// newTokenIssuer builds the session token issuer from the auth configuration.
func newTokenIssuer(configManager types.ConfigManager) *auth.TokenIssuer {
	authConfig := configManager.GetAuthConfig()
	ttl := time.Duration(authConfig.SessionTTLHours) * time.Hour
	return auth.NewTokenIssuer(authConfig.JWTSecret, ttl)
}

// BuildContainer creates and configures the DI container.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		config.NewManager,
		db.NewDB,
		store.NewStore,
		newTokenIssuer,
		services.NewUserService,
		services.NewSiteConfigService,
		services.NewStatsService,
		services.NewContentCache,
		handler.NewServer,
		router.NewRouter,
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

// Package handler contains the HTTP handlers for the API surface.
package handler

import (
	"langart/internal/auth"
	"langart/internal/locale"
	"langart/internal/services"
	"langart/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/dig"
	"gorm.io/gorm"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	DB                *gorm.DB
	config            types.ConfigManager
	TokenIssuer       *auth.TokenIssuer
	UserService       *services.UserService
	SiteConfigService *services.SiteConfigService
	StatsService      *services.StatsService
	ContentCache      *services.ContentCache
}

// ServerParams defines the dependencies for the handler server.
type ServerParams struct {
	dig.In
	DB                *gorm.DB
	Config            types.ConfigManager
	TokenIssuer       *auth.TokenIssuer
	UserService       *services.UserService
	SiteConfigService *services.SiteConfigService
	StatsService      *services.StatsService
	ContentCache      *services.ContentCache
}

// NewServer creates a new handler server with dependencies injected by dig.
func NewServer(params ServerParams) *Server {
	return &Server{
		DB:                params.DB,
		config:            params.Config,
		TokenIssuer:       params.TokenIssuer,
		UserService:       params.UserService,
		SiteConfigService: params.SiteConfigService,
		StatsService:      params.StatsService,
		ContentCache:      params.ContentCache,
	}
}

// requestLang returns the explicitly requested content language, reporting
// whether the caller asked for resolution at all. Admin reads omit the lang
// parameter and receive raw localized maps for editing.
func requestLang(c *gin.Context) (locale.Lang, bool) {
	if c.Query("lang") == "" {
		return locale.DefaultLang, false
	}
	return locale.FromContext(c), true
}

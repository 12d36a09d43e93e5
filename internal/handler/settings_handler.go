package handler

import (
	app_errors "langart/internal/errors"
	"langart/internal/models"
	"langart/internal/response"
	"langart/internal/services"

	"github.com/gin-gonic/gin"
)

// GetSettings handles GET /api/settings. The singleton row is created with
// defaults on first read, so the endpoint is idempotent from day one.
func (s *Server) GetSettings(c *gin.Context) {
	var config models.SiteConfig
	if s.ContentCache.Get(services.CacheKeySiteConfig, &config) {
		response.Success(c, config)
		return
	}

	loaded, err := s.SiteConfigService.Get()
	if err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Put(services.CacheKeySiteConfig, loaded)
	response.Success(c, loaded)
}

// UpdateSettings handles PUT /api/settings.
func (s *Server) UpdateSettings(c *gin.Context) {
	var config models.SiteConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	updated, err := s.SiteConfigService.Update(&config)
	if err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeySiteConfig)
	response.SuccessI18n(c, "settings.updated", updated)
}

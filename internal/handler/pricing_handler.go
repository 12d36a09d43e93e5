package handler

import (
	app_errors "langart/internal/errors"
	"langart/internal/models"
	"langart/internal/response"
	"langart/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// ListPricingPlans handles GET /api/pricing. Plans come back in their
// explicit display order; the list is cached and writes invalidate it.
func (s *Server) ListPricingPlans(c *gin.Context) {
	var plans []models.PricingPlan
	if !s.ContentCache.Get(services.CacheKeyPricing, &plans) {
		// "order" is a reserved word in every supported dialect; let the
		// dialector quote it
		if err := s.DB.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
			Order("id asc").Find(&plans).Error; err != nil {
			response.Error(c, app_errors.ParseDBError(err))
			return
		}
		s.ContentCache.Put(services.CacheKeyPricing, plans)
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolvePricingPlans(plans, lang))
		return
	}
	response.Success(c, plans)
}

// GetPricingPlan handles GET /api/pricing/:id.
func (s *Server) GetPricingPlan(c *gin.Context) {
	var plan models.PricingPlan
	if err := s.DB.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolvePricingPlan(plan, lang))
		return
	}
	response.Success(c, plan)
}

// CreatePricingPlan handles POST /api/pricing.
func (s *Server) CreatePricingPlan(c *gin.Context) {
	var plan models.PricingPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	plan.ID = 0

	if err := s.DB.Create(&plan).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeyPricing)
	response.Created(c, plan)
}

// UpdatePricingPlan handles PUT /api/pricing/:id as a full-row replace.
func (s *Server) UpdatePricingPlan(c *gin.Context) {
	var existing models.PricingPlan
	if err := s.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	var plan models.PricingPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	plan.ID = existing.ID
	plan.CreatedAt = existing.CreatedAt

	if err := s.DB.Model(&existing).Select("*").Omit("id", "created_at").
		Updates(&plan).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeyPricing)
	response.SuccessI18n(c, "pricing.updated", plan)
}

// DeletePricingPlan handles DELETE /api/pricing/:id.
func (s *Server) DeletePricingPlan(c *gin.Context) {
	var plan models.PricingPlan
	if err := s.DB.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if err := s.DB.Delete(&plan).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeyPricing)
	response.SuccessI18n(c, "pricing.deleted", nil)
}

package handler

import (
	app_errors "langart/internal/errors"
	"langart/internal/models"
	"langart/internal/response"
	"langart/internal/services"

	"github.com/gin-gonic/gin"
)

func validateTestimonial(t *models.Testimonial) *app_errors.APIError {
	if t.Rating == 0 {
		t.Rating = 5
	}
	if t.Rating < 1 || t.Rating > 5 {
		return app_errors.NewValidationError("rating must be between 1 and 5")
	}
	return nil
}

// ListTestimonials handles GET /api/testimonials. The list is cached; writes
// invalidate the entry.
func (s *Server) ListTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if !s.ContentCache.Get(services.CacheKeyTestimonials, &testimonials) {
		if err := s.DB.Order("id asc").Find(&testimonials).Error; err != nil {
			response.Error(c, app_errors.ParseDBError(err))
			return
		}
		s.ContentCache.Put(services.CacheKeyTestimonials, testimonials)
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolveTestimonials(testimonials, lang))
		return
	}
	response.Success(c, testimonials)
}

// GetTestimonial handles GET /api/testimonials/:id.
func (s *Server) GetTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := s.DB.First(&testimonial, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolveTestimonial(testimonial, lang))
		return
	}
	response.Success(c, testimonial)
}

// CreateTestimonial handles POST /api/testimonials.
func (s *Server) CreateTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	testimonial.ID = 0

	if apiErr := validateTestimonial(&testimonial); apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if err := s.DB.Create(&testimonial).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeyTestimonials)
	response.Created(c, testimonial)
}

// UpdateTestimonial handles PUT /api/testimonials/:id as a full-row replace.
func (s *Server) UpdateTestimonial(c *gin.Context) {
	var existing models.Testimonial
	if err := s.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	testimonial.ID = existing.ID
	testimonial.CreatedAt = existing.CreatedAt

	if apiErr := validateTestimonial(&testimonial); apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if err := s.DB.Model(&existing).Select("*").Omit("id", "created_at").
		Updates(&testimonial).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeyTestimonials)
	response.SuccessI18n(c, "testimonial.updated", testimonial)
}

// DeleteTestimonial handles DELETE /api/testimonials/:id.
func (s *Server) DeleteTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := s.DB.First(&testimonial, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if err := s.DB.Delete(&testimonial).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeyTestimonials)
	response.SuccessI18n(c, "testimonial.deleted", nil)
}

package handler

import (
	app_errors "langart/internal/errors"
	"langart/internal/models"
	"langart/internal/response"
	"langart/internal/services"
	"langart/internal/utils"

	"github.com/gin-gonic/gin"
)

func validateInstructor(instructor *models.Instructor) *app_errors.APIError {
	if instructor.Slug == "" {
		return app_errors.NewValidationError("slug is required")
	}
	if !utils.IsValidSlug(instructor.Slug) {
		return app_errors.NewValidationError("slug must contain only lowercase letters, digits and hyphens")
	}
	return nil
}

// ListInstructors handles GET /api/instructors. The list is cached; writes
// invalidate the entry.
func (s *Server) ListInstructors(c *gin.Context) {
	var instructors []models.Instructor
	if !s.ContentCache.Get(services.CacheKeyInstructors, &instructors) {
		if err := s.DB.Order("id asc").Find(&instructors).Error; err != nil {
			response.Error(c, app_errors.ParseDBError(err))
			return
		}
		s.ContentCache.Put(services.CacheKeyInstructors, instructors)
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolveInstructors(instructors, lang))
		return
	}
	response.Success(c, instructors)
}

// GetInstructor handles GET /api/instructors/:id.
func (s *Server) GetInstructor(c *gin.Context) {
	var instructor models.Instructor
	if err := s.DB.First(&instructor, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolveInstructor(instructor, lang))
		return
	}
	response.Success(c, instructor)
}

// GetInstructorBySlug handles GET /api/instructors/slug/:slug.
func (s *Server) GetInstructorBySlug(c *gin.Context) {
	var instructor models.Instructor
	if err := s.DB.First(&instructor, "slug = ?", c.Param("slug")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolveInstructor(instructor, lang))
		return
	}
	response.Success(c, instructor)
}

// CreateInstructor handles POST /api/instructors.
func (s *Server) CreateInstructor(c *gin.Context) {
	var instructor models.Instructor
	if err := c.ShouldBindJSON(&instructor); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	instructor.ID = 0

	if apiErr := validateInstructor(&instructor); apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if err := s.DB.Create(&instructor).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeyInstructors)
	response.Created(c, instructor)
}

// UpdateInstructor handles PUT /api/instructors/:id as a full-row replace.
func (s *Server) UpdateInstructor(c *gin.Context) {
	var existing models.Instructor
	if err := s.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	var instructor models.Instructor
	if err := c.ShouldBindJSON(&instructor); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	instructor.ID = existing.ID
	instructor.CreatedAt = existing.CreatedAt

	if apiErr := validateInstructor(&instructor); apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if err := s.DB.Model(&existing).Select("*").Omit("id", "created_at").
		Updates(&instructor).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeyInstructors)
	response.SuccessI18n(c, "instructor.updated", instructor)
}

// DeleteInstructor handles DELETE /api/instructors/:id.
func (s *Server) DeleteInstructor(c *gin.Context) {
	var instructor models.Instructor
	if err := s.DB.First(&instructor, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if err := s.DB.Delete(&instructor).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	s.ContentCache.Invalidate(services.CacheKeyInstructors)
	response.SuccessI18n(c, "instructor.deleted", nil)
}

package handler

import (
	app_errors "langart/internal/errors"
	"langart/internal/models"
	"langart/internal/response"
	"langart/internal/utils"

	"github.com/gin-gonic/gin"
)

// validateCourse checks the writable invariants before a course row is
// persisted. A zero rating means the client omitted it and gets the default.
func validateCourse(course *models.Course) *app_errors.APIError {
	if course.Slug == "" {
		return app_errors.NewValidationError("slug is required")
	}
	if !utils.IsValidSlug(course.Slug) {
		return app_errors.NewValidationError("slug must contain only lowercase letters, digits and hyphens")
	}
	if course.Rating == 0 {
		course.Rating = 5
	}
	if course.Rating < 1 || course.Rating > 5 {
		return app_errors.NewValidationError("rating must be between 1 and 5")
	}
	for i := range course.Reviews {
		if course.Reviews[i].Rating == 0 {
			course.Reviews[i].Rating = 5
		}
		if course.Reviews[i].Rating < 1 || course.Reviews[i].Rating > 5 {
			return app_errors.NewValidationError("review rating must be between 1 and 5")
		}
	}
	return nil
}

// ListCourses handles GET /api/courses.
func (s *Server) ListCourses(c *gin.Context) {
	var courses []models.Course
	if err := s.DB.Order("id asc").Find(&courses).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolveCourses(courses, lang))
		return
	}
	response.Success(c, courses)
}

// GetCourse handles GET /api/courses/:id, including the course reviews.
func (s *Server) GetCourse(c *gin.Context) {
	var course models.Course
	if err := s.DB.Preload("Reviews").First(&course, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolveCourse(course, lang))
		return
	}
	response.Success(c, course)
}

// GetCourseBySlug handles GET /api/courses/slug/:slug, the public detail
// route.
func (s *Server) GetCourseBySlug(c *gin.Context) {
	var course models.Course
	if err := s.DB.Preload("Reviews").First(&course, "slug = ?", c.Param("slug")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if lang, ok := requestLang(c); ok {
		response.Success(c, resolveCourse(course, lang))
		return
	}
	response.Success(c, course)
}

// CreateCourse handles POST /api/courses.
func (s *Server) CreateCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	course.ID = 0

	if apiErr := validateCourse(&course); apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if err := s.DB.Create(&course).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}
	response.Created(c, course)
}

// UpdateCourse handles PUT /api/courses/:id as a full-row replace.
func (s *Server) UpdateCourse(c *gin.Context) {
	var existing models.Course
	if err := s.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt

	if apiErr := validateCourse(&course); apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	if err := s.DB.Model(&existing).Select("*").Omit("id", "created_at", "Reviews").
		Updates(&course).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	var updated models.Course
	if err := s.DB.Preload("Reviews").First(&updated, existing.ID).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}
	response.SuccessI18n(c, "course.updated", updated)
}

// DeleteCourse handles DELETE /api/courses/:id. Reviews go with the course.
func (s *Server) DeleteCourse(c *gin.Context) {
	var course models.Course
	if err := s.DB.First(&course, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if err := s.DB.Select("Reviews").Delete(&course).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}
	response.SuccessI18n(c, "course.deleted", nil)
}

package handler

import (
	"strings"

	app_errors "langart/internal/errors"
	"langart/internal/models"
	"langart/internal/response"

	"github.com/gin-gonic/gin"
)

// SubmitContact handles POST /api/contact, the public contact-form intake.
// Name and phone are the only required fields; nothing is persisted when
// validation fails.
func (s *Server) SubmitContact(c *gin.Context) {
	var submission models.ContactSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	submission.Name = strings.TrimSpace(submission.Name)
	submission.Phone = strings.TrimSpace(submission.Phone)
	if submission.Name == "" {
		response.Error(c, app_errors.NewValidationError("name is required"))
		return
	}
	if submission.Phone == "" {
		response.Error(c, app_errors.NewValidationError("phone is required"))
		return
	}

	submission.ID = 0
	submission.IsRead = false

	if err := s.DB.Create(&submission).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}
	response.Created(c, submission)
}

package handler

import (
	app_errors "langart/internal/errors"
	"langart/internal/models"
	"langart/internal/response"

	"github.com/gin-gonic/gin"
)

// UpdateSubmissionRequest is the PATCH /api/admin/submissions/:id payload.
// The pointer distinguishes "set to false" from "not provided".
type UpdateSubmissionRequest struct {
	IsRead *bool `json:"isRead"`
}

// ListSubmissions handles GET /api/admin/submissions, newest first.
func (s *Server) ListSubmissions(c *gin.Context) {
	var submissions []models.ContactSubmission
	if err := s.DB.Order("created_at desc, id desc").Find(&submissions).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}
	response.Success(c, submissions)
}

// UpdateSubmission handles PATCH /api/admin/submissions/:id. Omitting isRead
// toggles the flag; providing it sets it.
func (s *Server) UpdateSubmission(c *gin.Context) {
	var submission models.ContactSubmission
	if err := s.DB.First(&submission, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	var req UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	isRead := !submission.IsRead
	if req.IsRead != nil {
		isRead = *req.IsRead
	}

	if err := s.DB.Model(&submission).Update("is_read", isRead).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	submission.IsRead = isRead
	response.SuccessI18n(c, "submission.updated", submission)
}

// DeleteSubmission handles DELETE /api/admin/submissions/:id.
func (s *Server) DeleteSubmission(c *gin.Context) {
	var submission models.ContactSubmission
	if err := s.DB.First(&submission, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}

	if err := s.DB.Delete(&submission).Error; err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}
	response.SuccessI18n(c, "submission.deleted", nil)
}

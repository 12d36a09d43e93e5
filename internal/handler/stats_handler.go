package handler

import (
	app_errors "langart/internal/errors"
	"langart/internal/response"

	"github.com/gin-gonic/gin"
)

// GetStats handles GET /api/stats, the admin dashboard counters.
func (s *Server) GetStats(c *gin.Context) {
	stats, err := s.StatsService.Counts()
	if err != nil {
		response.Error(c, app_errors.ParseDBError(err))
		return
	}
	response.Success(c, stats)
}

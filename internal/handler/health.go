package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health. The probe reports uptime and database
// connectivity; it bypasses the JSON envelope so external checkers can rely
// on a flat document.
func (s *Server) Health(c *gin.Context) {
	status := "healthy"
	dbStatus := "ok"
	httpStatus := http.StatusOK

	sqlDB, err := s.DB.DB()
	if err != nil {
		dbStatus = "error"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "error"
	}
	if dbStatus != "ok" {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	uptime := ""
	if v, ok := c.Get("serverStartTime"); ok {
		if startTime, ok := v.(time.Time); ok {
			uptime = time.Since(startTime).Round(time.Second).String()
		}
	}

	c.JSON(httpStatus, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    uptime,
	})
}

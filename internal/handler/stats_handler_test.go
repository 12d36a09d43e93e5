package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"langart/internal/locale"
	"langart/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)

	require.NoError(t, server.DB.Create(&models.Course{Slug: "a", Title: locale.PlainText("A")}).Error)
	require.NoError(t, server.DB.Create(&models.Course{Slug: "b", Title: locale.PlainText("B")}).Error)
	require.NoError(t, server.DB.Create(&models.Instructor{Slug: "i", Name: locale.PlainText("I")}).Error)
	require.NoError(t, server.DB.Create(&models.Testimonial{Name: locale.PlainText("T")}).Error)
	require.NoError(t, server.DB.Create(&models.ContactSubmission{Name: "N", Phone: "1", IsRead: true}).Error)
	require.NoError(t, server.DB.Create(&models.ContactSubmission{Name: "M", Phone: "2"}).Error)
	require.NoError(t, server.DB.Create(&models.ContactSubmission{Name: "O", Phone: "3"}).Error)

	w, c := getRequest(t, "/api/stats")
	server.GetStats(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["courses"])
	assert.Equal(t, float64(1), data["instructors"])
	assert.Equal(t, float64(1), data["testimonials"])
	assert.Equal(t, float64(0), data["pricingPlans"])
	assert.Equal(t, float64(2), data["unreadSubmissions"])
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"langart/internal/locale"
	"langart/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTestimonial() models.Testimonial {
	return models.Testimonial{
		Name: locale.PlainText("Dilnoza"),
		Role: locale.LocalizedText(map[locale.Lang]string{
			locale.LangEN: "IELTS student",
			locale.LangRU: "Студентка IELTS",
			locale.LangUZ: "IELTS talabasi",
		}),
		Content: locale.LocalizedText(map[locale.Lang]string{
			locale.LangEN: "Scored 7.5 after three months",
			locale.LangRU: "",
			locale.LangUZ: "",
		}),
		Rating: 5,
	}
}

func TestTestimonialLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)

	w, c := postJSON(t, "POST", "/api/testimonials", testTestimonial())
	server.CreateTestimonial(c)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Resolution: ru content is empty, the en value fills in
	w, c = getRequest(t, "/api/testimonials?lang=ru")
	server.ListTestimonials(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	items := body["data"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Dilnoza", item["name"])
	assert.Equal(t, "Студентка IELTS", item["role"])
	assert.Equal(t, "Scored 7.5 after three months", item["content"])

	// Update
	updated := testTestimonial()
	updated.Rating = 4
	w, c = postJSON(t, "PUT", "/api/testimonials/1", updated)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	server.UpdateTestimonial(c)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Testimonial
	require.NoError(t, server.DB.First(&stored, 1).Error)
	assert.Equal(t, 4, stored.Rating)

	// Delete
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/api/testimonials/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	server.DeleteTestimonial(c)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, server.DB.Model(&models.Testimonial{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateTestimonial_RatingValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)

	testimonial := testTestimonial()
	testimonial.Rating = 6

	w, c := postJSON(t, "POST", "/api/testimonials", testimonial)
	server.CreateTestimonial(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Omitted rating defaults to 5
	testimonial.Rating = 0
	w, c = postJSON(t, "POST", "/api/testimonials", testimonial)
	server.CreateTestimonial(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Testimonial
	decodeData(t, w, &created)
	assert.Equal(t, 5, created.Rating)
}

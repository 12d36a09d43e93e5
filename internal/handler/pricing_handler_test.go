package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"langart/internal/locale"
	"langart/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPricingPlans_Order(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)

	plans := []models.PricingPlan{
		{Title: locale.PlainText("Premium"), Order: 2, Price: 1500000},
		{Title: locale.PlainText("Standard"), Order: 1, Price: 990000},
		{Title: locale.PlainText("Intensive"), Order: 1, Price: 1200000},
	}
	for i := range plans {
		require.NoError(t, server.DB.Create(&plans[i]).Error)
	}

	w, c := getRequest(t, "/api/pricing")
	server.ListPricingPlans(c)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.PricingPlan
	decodeData(t, w, &listed)
	require.Len(t, listed, 3)

	// Explicit order first, id breaks ties
	assert.Equal(t, "Standard", listed[0].Title.Resolve(locale.LangEN))
	assert.Equal(t, "Intensive", listed[1].Title.Resolve(locale.LangEN))
	assert.Equal(t, "Premium", listed[2].Title.Resolve(locale.LangEN))
}

func TestPricingPlanLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)

	plan := models.PricingPlan{
		Title: locale.LocalizedText(map[locale.Lang]string{
			locale.LangEN: "Standard",
			locale.LangRU: "Стандарт",
			locale.LangUZ: "Standart",
		}),
		Features: locale.LocalizedList(map[locale.Lang][]string{
			locale.LangEN: {"10 students per group", "90 minute lessons"},
			locale.LangRU: {"10 студентов в группе"},
			locale.LangUZ: {},
		}),
		Price:          990000,
		PricePerLesson: 41250,
		StudentsCount:  10,
		FocusedPrice:   1500000,
		DuoPrice:       1200000,
	}

	w, c := postJSON(t, "POST", "/api/pricing", plan)
	server.CreatePricingPlan(c)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.PricingPlan
	decodeData(t, w, &created)
	require.NotZero(t, created.ID)

	// Update
	plan.Price = 1100000
	w, c = postJSON(t, "PUT", "/api/pricing/1", plan)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	server.UpdatePricingPlan(c)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.PricingPlan
	require.NoError(t, server.DB.First(&stored, created.ID).Error)
	assert.Equal(t, 1100000, stored.Price)
	assert.Equal(t, []string{"10 студентов в группе"}, stored.Features.Resolve(locale.LangRU))

	// Delete
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/api/pricing/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	server.DeletePricingPlan(c)
	require.Equal(t, http.StatusOK, w.Code)

	w, c = getRequest(t, "/api/pricing/1", gin.Param{Key: "id", Value: "1"})
	server.GetPricingPlan(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package handler

import (
	"net/http"
	"testing"

	"langart/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		submission     models.ContactSubmission
		expectedStatus int
		persisted      bool
	}{
		{
			name: "valid_submission",
			submission: models.ContactSubmission{
				Name:    "Jasur",
				Phone:   "+998 90 555 66 77",
				Course:  "general-english",
				Message: "When does the next group start?",
			},
			expectedStatus: http.StatusCreated,
			persisted:      true,
		},
		{
			name: "minimal_submission",
			submission: models.ContactSubmission{
				Name:  "Nilufar",
				Phone: "+998 93 111 22 33",
			},
			expectedStatus: http.StatusCreated,
			persisted:      true,
		},
		{
			name: "missing_name",
			submission: models.ContactSubmission{
				Phone: "+998 90 555 66 77",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "whitespace_name",
			submission: models.ContactSubmission{
				Name:  "   ",
				Phone: "+998 90 555 66 77",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing_phone",
			submission: models.ContactSubmission{
				Name: "Jasur",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := setupTestServer(t)

			w, c := postJSON(t, "POST", "/api/contact", tt.submission)
			server.SubmitContact(c)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			var count int64
			require.NoError(t, server.DB.Model(&models.ContactSubmission{}).Count(&count).Error)
			if tt.persisted {
				assert.EqualValues(t, 1, count)

				var stored models.ContactSubmission
				require.NoError(t, server.DB.First(&stored).Error)
				assert.False(t, stored.IsRead, "new submissions start unread")
			} else {
				assert.Zero(t, count, "rejected submissions must not be persisted")
			}
		})
	}
}

func TestSubmitContact_IgnoresClientIsRead(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)

	w, c := postJSON(t, "POST", "/api/contact", models.ContactSubmission{
		Name:   "Jasur",
		Phone:  "+998 90 555 66 77",
		IsRead: true,
	})
	server.SubmitContact(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.ContactSubmission
	require.NoError(t, server.DB.First(&stored).Error)
	assert.False(t, stored.IsRead)
}

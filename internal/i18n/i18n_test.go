package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestT_Translations(t *testing.T) {
	require.NoError(t, Init())

	assert.Equal(t, "Login successful", T(GetLocalizer("en"), "auth.login_success"))
	assert.Equal(t, "Вход выполнен успешно", T(GetLocalizer("ru"), "auth.login_success"))
	assert.Equal(t, "Tizimga muvaffaqiyatli kirdingiz", T(GetLocalizer("uz"), "auth.login_success"))

	// Unknown languages fall back to English
	assert.Equal(t, "Login successful", T(GetLocalizer("fr"), "auth.login_success"))

	// Unknown message IDs fall back to the ID itself
	assert.Equal(t, "no.such.message", T(GetLocalizer("en"), "no.such.message"))
}

func TestT_TemplateData(t *testing.T) {
	require.NoError(t, Init())

	msg := T(GetLocalizer("en"), "auth.password_short", map[string]any{"Min": 6})
	assert.Equal(t, "New password must be at least 6 characters", msg)
}

func TestMiddleware_LanguageResolution(t *testing.T) {
	require.NoError(t, Init())

	tests := []struct {
		name     string
		target   string
		header   string
		expected string
	}{
		{"query_param", "/api/test?lang=ru", "", "Вход выполнен успешно"},
		{"accept_language", "/api/test", "uz", "Tizimga muvaffaqiyatli kirdingiz"},
		{"query_wins", "/api/test?lang=ru", "uz", "Вход выполнен успешно"},
		{"default_en", "/api/test", "", "Login successful"},
		{"region_subtag", "/api/test", "ru-RU", "Вход выполнен успешно"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				c.Request.Header.Set("Accept-Language", tt.header)
			}

			Middleware()(c)
			assert.Equal(t, tt.expected, Message(c, "auth.login_success"))
		})
	}
}

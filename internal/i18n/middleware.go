package i18n

import (
	"langart/internal/locale"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

const (
	// LocalizerKey stores the request Localizer in gin.Context.
	LocalizerKey = "localizer"
)

// Middleware attaches a Localizer for the request language. The same
// query/header resolution as content localization applies, so API messages
// and resolved content always agree on the language.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := c.Query("lang")
		if tag == "" {
			tag = c.GetHeader("Accept-Language")
		}
		c.Set(LocalizerKey, GetLocalizer(tag))
		c.Next()
	}
}

// GetLocalizerFromContext gets the Localizer from gin.Context.
func GetLocalizerFromContext(c *gin.Context) *i18n.Localizer {
	if localizer, exists := c.Get(LocalizerKey); exists {
		if l, ok := localizer.(*i18n.Localizer); ok {
			return l
		}
	}
	return GetLocalizer(string(locale.DefaultLang))
}

// Message gets an internationalized message for the request.
func Message(c *gin.Context, msgID string, templateData ...map[string]any) string {
	localizer := GetLocalizerFromContext(c)
	return T(localizer, msgID, templateData...)
}

package locale

import (
	"github.com/gin-gonic/gin"
)

// langKey stores the resolved content language in gin.Context.
const langKey = "content_lang"

// Middleware resolves the content language for a request. The explicit
// ?lang= query parameter wins; the Accept-Language header is the fallback.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := c.Query("lang")
		if tag == "" {
			tag = c.GetHeader("Accept-Language")
		}
		c.Set(langKey, Normalize(tag))
		c.Next()
	}
}

// FromContext returns the request's content language, defaulting to en.
func FromContext(c *gin.Context) Lang {
	if v, exists := c.Get(langKey); exists {
		if lang, ok := v.(Lang); ok {
			return lang
		}
	}
	return DefaultLang
}

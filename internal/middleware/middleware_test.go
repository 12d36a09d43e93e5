package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"langart/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestLogger tests logging middleware
func TestLogger(t *testing.T) {
	config := types.LogConfig{Level: "info"}
	middleware := Logger(config)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	middleware(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestCORS tests CORS middleware
func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		config         types.CORSConfig
		origin         string
		method         string
		expectedStatus int
		expectOrigin   string
	}{
		{
			name:           "disabled",
			config:         types.CORSConfig{Enabled: false},
			origin:         "http://localhost:3000",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectOrigin:   "",
		},
		{
			name: "wildcard_without_credentials",
			config: types.CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST"},
				AllowedHeaders: []string{"*"},
			},
			origin:         "http://localhost:3000",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectOrigin:   "*",
		},
		{
			name: "explicit_origin_allowed",
			config: types.CORSConfig{
				Enabled:          true,
				AllowedOrigins:   []string{"https://langart.uz"},
				AllowedMethods:   []string{"GET", "POST"},
				AllowedHeaders:   []string{"Content-Type"},
				AllowCredentials: true,
			},
			origin:         "https://langart.uz",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectOrigin:   "https://langart.uz",
		},
		{
			name: "origin_not_allowed",
			config: types.CORSConfig{
				Enabled:          true,
				AllowedOrigins:   []string{"https://langart.uz"},
				AllowedMethods:   []string{"GET"},
				AllowedHeaders:   []string{"Content-Type"},
				AllowCredentials: true,
			},
			origin:         "https://evil.example",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectOrigin:   "",
		},
		{
			name: "preflight",
			config: types.CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"https://langart.uz"},
				AllowedMethods: []string{"GET", "POST"},
				AllowedHeaders: []string{"Content-Type"},
			},
			origin:         "https://langart.uz",
			method:         http.MethodOptions,
			expectedStatus: http.StatusNoContent,
			expectOrigin:   "https://langart.uz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.config))
			router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/test", nil)
			req.Header.Set("Origin", tt.origin)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

// TestRateLimiter tests the concurrency limiter passes requests under the limit
func TestRateLimiter(t *testing.T) {
	router := gin.New()
	router.Use(RateLimiter(types.PerformanceConfig{MaxConcurrentRequests: 2}))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestSecurityHeaders tests security headers are set
func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}

// Package router wires the HTTP routes to their handlers.
package router

import (
	"time"

	"langart/internal/auth"
	"langart/internal/handler"
	"langart/internal/i18n"
	"langart/internal/locale"
	"langart/internal/middleware"
	"langart/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// ImagesDir is the on-disk directory served under /images. Uploads land
// there out of band; the server only reads it.
const ImagesDir = "./data/images"

func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
	tokenIssuer *auth.TokenIssuer,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	router.Use(middleware.RateLimiter(configManager.GetPerformanceConfig()))
	router.Use(middleware.SecurityHeaders())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	startTime := time.Now()
	router.Use(func(c *gin.Context) {
		c.Set("serverStartTime", startTime)
		c.Next()
	})

	registerSystemRoutes(router, serverHandler)
	registerAPIRoutes(router, serverHandler, tokenIssuer)
	registerStaticRoutes(router)

	return router
}

// registerSystemRoutes registers system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/health", serverHandler.Health)
}

// registerAPIRoutes registers API routes
func registerAPIRoutes(router *gin.Engine, serverHandler *handler.Server, tokenIssuer *auth.TokenIssuer) {
	api := router.Group("/api")
	api.Use(i18n.Middleware())
	api.Use(locale.Middleware())

	registerPublicAPIRoutes(api, serverHandler)

	protectedAPI := api.Group("")
	protectedAPI.Use(middleware.AdminAuth(tokenIssuer))
	registerProtectedAPIRoutes(protectedAPI, serverHandler)
}

// registerPublicAPIRoutes registers the routes the public site consumes.
func registerPublicAPIRoutes(api *gin.RouterGroup, serverHandler *handler.Server) {
	api.POST("/auth/login", serverHandler.Login)
	api.POST("/auth/logout", serverHandler.Logout)

	api.GET("/courses", serverHandler.ListCourses)
	api.GET("/courses/:id", serverHandler.GetCourse)
	api.GET("/courses/slug/:slug", serverHandler.GetCourseBySlug)

	api.GET("/instructors", serverHandler.ListInstructors)
	api.GET("/instructors/:id", serverHandler.GetInstructor)
	api.GET("/instructors/slug/:slug", serverHandler.GetInstructorBySlug)

	api.GET("/testimonials", serverHandler.ListTestimonials)
	api.GET("/testimonials/:id", serverHandler.GetTestimonial)

	api.GET("/pricing", serverHandler.ListPricingPlans)
	api.GET("/pricing/:id", serverHandler.GetPricingPlan)

	api.GET("/settings", serverHandler.GetSettings)

	api.POST("/contact", serverHandler.SubmitContact)
}

// registerProtectedAPIRoutes registers the session-gated admin routes.
func registerProtectedAPIRoutes(api *gin.RouterGroup, serverHandler *handler.Server) {
	api.POST("/auth/change-password", serverHandler.ChangePassword)

	api.POST("/courses", serverHandler.CreateCourse)
	api.PUT("/courses/:id", serverHandler.UpdateCourse)
	api.DELETE("/courses/:id", serverHandler.DeleteCourse)

	api.POST("/instructors", serverHandler.CreateInstructor)
	api.PUT("/instructors/:id", serverHandler.UpdateInstructor)
	api.DELETE("/instructors/:id", serverHandler.DeleteInstructor)

	api.POST("/testimonials", serverHandler.CreateTestimonial)
	api.PUT("/testimonials/:id", serverHandler.UpdateTestimonial)
	api.DELETE("/testimonials/:id", serverHandler.DeleteTestimonial)

	api.POST("/pricing", serverHandler.CreatePricingPlan)
	api.PUT("/pricing/:id", serverHandler.UpdatePricingPlan)
	api.DELETE("/pricing/:id", serverHandler.DeletePricingPlan)

	api.PUT("/settings", serverHandler.UpdateSettings)

	api.GET("/stats", serverHandler.GetStats)

	admin := api.Group("/admin")
	{
		admin.GET("/submissions", serverHandler.ListSubmissions)
		admin.PATCH("/submissions/:id", serverHandler.UpdateSubmission)
		admin.DELETE("/submissions/:id", serverHandler.DeleteSubmission)
	}
}

// registerStaticRoutes serves the content images referenced by courses and
// instructors.
func registerStaticRoutes(router *gin.Engine) {
	router.Use(static.Serve("/images", static.LocalFile(ImagesDir, false)))
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth            *controllers.AuthController
	Courses         *controllers.CourseController
	Profiles        *controllers.ProfileController
	Bookmarks       *controllers.BookmarkController
	Recommendations *controllers.RecommendationController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *Controllers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// --- Public routes ---
	api.GET("/health/", controllers.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register/", ctrl.Auth.Register)
		auth.POST("/login/", ctrl.Auth.Login)
	}

	// Course catalog is read-only; writes answer 405 whether or not the caller is authenticated
	courses := api.Group("/courses")
	{
		courses.GET("/", ctrl.Courses.ListCourses)
		courses.GET("/:id/", ctrl.Courses.GetCourse)
		for _, path := range []string{"/", "/:id/"} {
			courses.POST(path, middleware.MethodNotAllowed)
			courses.PUT(path, middleware.MethodNotAllowed)
			courses.PATCH(path, middleware.MethodNotAllowed)
			courses.DELETE(path, middleware.MethodNotAllowed)
		}
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	profiles := authenticated.Group("/profiles")
	{
		profiles.GET("/", ctrl.Profiles.ListProfiles)
		profiles.POST("/", ctrl.Profiles.CreateProfile)
		profiles.GET("/:id/", ctrl.Profiles.GetProfile)
		profiles.PUT("/:id/", ctrl.Profiles.UpdateProfile)
		profiles.PATCH("/:id/", ctrl.Profiles.PatchProfile)
		profiles.DELETE("/:id/", ctrl.Profiles.DeleteProfile)
	}

	bookmarks := authenticated.Group("/bookmarks")
	{
		bookmarks.GET("/", ctrl.Bookmarks.ListBookmarks)
		bookmarks.POST("/", ctrl.Bookmarks.CreateBookmark)
		bookmarks.GET("/:id/", ctrl.Bookmarks.GetBookmark)
		bookmarks.PUT("/:id/", ctrl.Bookmarks.UpdateBookmark)
		bookmarks.PATCH("/:id/", ctrl.Bookmarks.PatchBookmark)
		bookmarks.DELETE("/:id/", ctrl.Bookmarks.DeleteBookmark)
	}

	authenticated.GET("/recommendations/", ctrl.Recommendations.GetRecommendations)

	// --- Operational ---
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

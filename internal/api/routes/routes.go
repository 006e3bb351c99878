package routes

import (
	"translationflow/internal/api/handlers"
	"translationflow/internal/api/middleware"
	"translationflow/internal/auth"
	"translationflow/internal/config"
	"translationflow/internal/repository"
	"translationflow/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application on top of the
// selected repository backend
func SetupRoutes(repos *repository.Repositories, health handlers.Pinger, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize services
	projectService := service.NewProjectService(repos.Projects, validator)
	videoService := service.NewVideoService(repos.Videos, repos.Projects, validator)
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), repos.Users, validator)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(Version, health)
	catalogHandler := handlers.NewCatalogHandler()
	projectHandler := handlers.NewProjectHandler(projectService)
	videoHandler := handlers.NewVideoHandler(videoService)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		authRoutes.PUT("/me", authMiddleware.RequireAuth(), authHandler.UpdateMe)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/phases", catalogHandler.ListPhases)
		v1.GET("/languages", catalogHandler.ListLanguages)

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/stats", projectHandler.GetStats)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)

			// Phase routes
			projects.GET("/:id/phases/:phase", projectHandler.GetPhase)
			projects.PUT("/:id/phases/:phase", projectHandler.UpdatePhaseStatus)

			// Video routes
			videos := projects.Group("/:id/videos")
			{
				videos.GET("", videoHandler.ListVideos)
				videos.POST("", videoHandler.CreateVideo)
				videos.GET("/:videoId", videoHandler.GetVideo)
				videos.PUT("/:videoId", videoHandler.UpdateVideo)
				videos.DELETE("/:videoId", videoHandler.DeleteVideo)
				videos.PUT("/:videoId/status", videoHandler.UpdateVideoStatus)
			}
		}
	}

	return router, nil
}

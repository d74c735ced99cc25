package routes

import (
	"fmt"
	"net/http"

	"planner-backend/internal/api/handlers"
	"planner-backend/internal/api/middleware"
	"planner-backend/internal/audit"
	"planner-backend/internal/auth"
	"planner-backend/internal/config"
	"planner-backend/internal/delta"
	"planner-backend/internal/metrics"
	"planner-backend/internal/repository"
	"planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The dispatcher
// is owned by the caller, which closes it on shutdown.
func SetupRoutes(db *gorm.DB, cfg *config.Config, dispatcher audit.DispatcherInterface) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(metrics.Middleware())
	}

	authService, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: cfg.JWTSecret})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	validator := delta.NewValidator()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	uow := repository.NewUnitOfWork(db)

	// Initialize services
	syncService := service.NewSyncService(uow, repos, validator, dispatcher, service.SyncOptions{
		Timeout:            cfg.SyncTimeout(),
		EnforceBaseVersion: cfg.SyncEnforceBaseVersion,
	})
	projectService := service.NewProjectService(repos.Projects, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	syncHandler := handlers.NewSyncHandler(syncService)
	projectHandler := handlers.NewProjectHandler(projectService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", metrics.Handler())
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/members", projectHandler.GrantMember)
			projects.POST("/:id/delta", syncHandler.ApplyDelta)
			projects.GET("/:id/hierarchy/check", syncHandler.CheckHierarchy)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"kind":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/twitterlike/backend/internal/handlers"
	"github.com/twitterlike/backend/internal/metrics"
	"github.com/twitterlike/backend/internal/middleware"
	"github.com/twitterlike/backend/internal/repositories"
	"github.com/twitterlike/backend/internal/service"
	"github.com/twitterlike/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(metrics.Middleware())
	logrus.Info("Global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	// Always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize repositories and services ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	postService := service.NewPostService(postRepo)
	graphService := service.NewGraphService(db)
	engagementService := service.NewEngagementService(db)
	feedService := service.NewFeedService(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(authService)
	authHandler.RegisterAuthRoutes(authGroup)
	logrus.Info("Auth routes configured")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterFeedRoutes(api)

	followHandler := handlers.NewFollowHandler(graphService)
	followHandler.RegisterFollowRoutes(api)

	likeHandler := handlers.NewLikeHandler(engagementService)
	likeHandler.RegisterLikeRoutes(api)

	commentHandler := handlers.NewCommentHandler(engagementService)
	commentHandler.RegisterCommentRoutes(api)

	logrus.Info("All routes configured")
}

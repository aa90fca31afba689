package main

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/twitterlike/backend/internal/repositories"
	"github.com/twitterlike/backend/internal/router"
	"github.com/twitterlike/backend/pkg/config"
	"github.com/twitterlike/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Schema creation is the seed command's job; refuse to run without it.
	if err := repositories.CheckSchema(db.Postgres); err != nil {
		logrus.Fatalf("Schema check failed: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

package main

import (
	"log"

	"github.com/anonto42/tweetbox/backend/internal/router"
	"github.com/anonto42/tweetbox/backend/pkg/config"
	"github.com/anonto42/tweetbox/backend/pkg/session"
	"github.com/anonto42/tweetbox/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db) // Ensure the connection is closed when main exits

	store := session.NewCookieStore(cfg.SessionName, cfg.IsProduction(), []byte(cfg.SessionSecret))

	// Create Echo instance
	e := echo.New()

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	config.SetupMiddleware(e, cfg)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, cfg, store)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

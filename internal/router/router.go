package router

import (
	"log"

	"github.com/anonto42/tweetbox/backend/internal/handlers"
	"github.com/anonto42/tweetbox/backend/internal/middleware"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/anonto42/tweetbox/backend/internal/services"
	"github.com/anonto42/tweetbox/backend/pkg/config"
	"github.com/anonto42/tweetbox/backend/pkg/session"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and injects dependencies.
// e.Validator must be set before requests are served.
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, store *session.Store) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	tx := repositories.NewGormTransactor(db)
	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	tweetRepo := repositories.NewPostgresTweetRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)

	// --- Initialize Services ---
	validate := validatorOf(e)
	accountService := services.NewAccountService(userRepo, validate, cfg.BcryptCost)
	followService := services.NewFollowService(tx, userRepo, followRepo)
	likeService := services.NewLikeService(tx, tweetRepo, likeRepo)
	tweetService := services.NewTweetService(tx, tweetRepo, likeRepo, validate)
	profileService := services.NewProfileService(userRepo, followRepo, tweetRepo, likeRepo)

	// --- Unprotected routes for authentication ---
	authHandler := handlers.NewAuthHandler(accountService, store, cfg.JWTSecret, cfg.JWTTTL)
	authHandler.RegisterAuthRoutes(e.Group("/accounts"))
	authHandler.RegisterTokenRoutes(e.Group("/api/v1/auth"))
	log.Println("Auth routes configured.")

	// --- Protected routes (session cookie or bearer token) ---
	app := e.Group("", middleware.Authenticate(store, accountService, cfg.JWTSecret))
	log.Println("Authentication middleware applied to application routes.")

	tweetHandler := handlers.NewTweetHandler(tweetService, store)
	tweetHandler.RegisterTweetRoutes(app)
	log.Println("Tweet routes configured.")

	likeHandler := handlers.NewLikeHandler(likeService)
	likeHandler.RegisterLikeRoutes(app)
	log.Println("Like routes configured.")

	followHandler := handlers.NewFollowHandler(followService, store)
	followHandler.RegisterFollowRoutes(app)
	log.Println("Follow routes configured.")

	userHandler := handlers.NewUserHandler(profileService, store)
	userHandler.RegisterProfileRoutes(app)
	log.Println("User profile routes configured.")

	log.Println("All routes configured.")
}

func validatorOf(e *echo.Echo) services.Validator {
	if e.Validator == nil {
		log.Fatal("echo validator must be configured before routes")
	}
	return e.Validator
}

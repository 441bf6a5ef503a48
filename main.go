package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"fueltracker-api/config"
	"fueltracker-api/database"
	"fueltracker-api/middleware"
	"fueltracker-api/routes"
	"fueltracker-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	authService := services.NewAuthService(cfg.JWTSecret)

	// Seed the Setting and Admin singletons
	if err := database.Bootstrap(db, authService, cfg.AdminDefaultPassword); err != nil {
		log.Fatal("Failed to bootstrap database:", err)
	}

	emailService := services.NewEmailService(cfg)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 30))

	routes.SetupRoutes(router, db, authService, emailService)

	log.Printf("Starting FuelTracker API server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"stayspot-api/config"
	"stayspot-api/database"
	"stayspot-api/jobs"
	"stayspot-api/middleware"
	"stayspot-api/routes"
	"stayspot-api/services"
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

	// Seed demo data in development only
	if !cfg.IsProduction() {
		if err := database.SeedData(db); err != nil {
			log.Printf("Warning: Failed to seed database: %v", err)
		}
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ErrorHandler())

	emailService := services.NewEmailService(cfg)

	// Setup routes
	routes.SetupRoutes(router, db, cfg.JWTSecret, emailService)

	// Background reminder job for next-day bookings
	reminderJob := jobs.NewBookingReminderJob(db, emailService, 24*time.Hour)
	reminderJob.Start()
	defer reminderJob.Stop()

	// Start server
	log.Printf("Starting StaySpot API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

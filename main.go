package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"motomart-api/config"
	"motomart-api/database"
	"motomart-api/middleware"
	"motomart-api/routes"
	"motomart-api/services"
	"motomart-api/storage"
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

	// Seed database with sample data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Object storage for listing and testimonial images
	blobs, err := storage.NewBlobStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize object storage:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := blobs.EnsureBuckets(ctx, cfg.ListingsBucket, cfg.TestimonialBucket); err != nil {
		log.Printf("Warning: could not ensure storage buckets: %v", err)
	}
	cancel()

	// Optional redis page cache
	cache := storage.NewPageCache(cfg.RedisAddr)

	// Email notifications for new submissions
	emailService := services.NewEmailService(cfg)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, blobs, cache, emailService)

	// Start server
	log.Printf("Starting MotoMart API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

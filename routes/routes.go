package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"motomart-api/config"
	"motomart-api/controllers"
	"motomart-api/middleware"
	"motomart-api/services"
	"motomart-api/storage"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, blobs *storage.BlobStore, cache *storage.PageCache, emailService *services.EmailService) {
	// Services
	listingService := services.NewListingService(db, blobs, cache, cfg.ListingsBucket)
	submissionService := services.NewSubmissionService(db, blobs, cache, emailService, cfg.ListingsBucket)
	testimonialService := services.NewTestimonialService(db, blobs, cache, cfg.TestimonialBucket)
	priceService := services.NewPriceService(cfg)

	// Controllers
	authController := controllers.NewAuthController(cfg.AdminPasswordHash, cfg.JWTSecret)
	listingController := controllers.NewListingController(listingService)
	submissionController := controllers.NewSubmissionController(submissionService)
	testimonialController := controllers.NewTestimonialController(testimonialService)
	priceController := controllers.NewPriceController(priceService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Public storefront
	v1.GET("/listings", listingController.GetListings)
	v1.GET("/listings/:id", listingController.GetListing)
	v1.GET("/testimonials", testimonialController.GetTestimonials)
	v1.POST("/sell", middleware.RateLimit(10, 3), submissionController.SubmitListing)
	v1.POST("/suggest-price", middleware.RateLimit(10, 3), priceController.SuggestPrice)

	// Admin auth (public, rate-limited)
	v1.POST("/admin/login", middleware.RateLimit(5, 3), authController.Login)

	// Admin panel
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		listings := admin.Group("/listings")
		{
			listings.POST("/", listingController.CreateListing)
			listings.PUT("/:id", listingController.UpdateListing)
			listings.DELETE("/:id", listingController.DeleteListing)
		}

		testimonials := admin.Group("/testimonials")
		{
			testimonials.POST("/", testimonialController.CreateTestimonial)
			testimonials.PUT("/:id", testimonialController.UpdateTestimonial)
			testimonials.DELETE("/:id", testimonialController.DeleteTestimonial)
		}

		submissions := admin.Group("/submissions")
		{
			submissions.GET("/", submissionController.GetSubmissions)
			submissions.POST("/:id/approve", submissionController.ApproveSubmission)
			submissions.DELETE("/:id", submissionController.DeleteSubmission)
		}
	}
}

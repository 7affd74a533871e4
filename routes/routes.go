package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayspot-api/controllers"
	"stayspot-api/middleware"
	"stayspot-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, jwtSecret, emailService)
	spotController := controllers.NewSpotController(db)
	reviewController := controllers.NewReviewController(db)
	bookingController := controllers.NewBookingController(db, emailService)
	imageController := controllers.NewImageController(db)

	requireAuth := middleware.AuthMiddleware(jwtSecret)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtSecret)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.ValidateJSON())

	// Auth / session routes (public, rate limited)
	authLimiter := middleware.RateLimit(30, 10)
	api.POST("/users", authLimiter, authController.Signup)

	session := api.Group("/session")
	{
		session.POST("", authLimiter, authController.Login)
		session.GET("", optionalAuth, authController.Restore)
		session.DELETE("", authController.Logout)
	}

	// Spot routes
	spots := api.Group("/spots")
	{
		spots.GET("", spotController.GetSpots)
		spots.GET("/current", requireAuth, spotController.GetCurrentSpots)
		spots.GET("/:spotId", spotController.GetSpot)
		spots.POST("", requireAuth, spotController.CreateSpot)
		spots.PUT("/:spotId", requireAuth, spotController.UpdateSpot)
		spots.DELETE("/:spotId", requireAuth, spotController.DeleteSpot)
		spots.POST("/:spotId/images", requireAuth, spotController.AddSpotImage)

		spots.GET("/:spotId/reviews", reviewController.GetSpotReviews)
		spots.POST("/:spotId/reviews", requireAuth, reviewController.CreateSpotReview)

		spots.GET("/:spotId/bookings", requireAuth, bookingController.GetSpotBookings)
		spots.POST("/:spotId/bookings", requireAuth, bookingController.CreateSpotBooking)
	}

	// Review routes
	reviews := api.Group("/reviews")
	reviews.Use(requireAuth)
	{
		reviews.GET("/current", reviewController.GetCurrentReviews)
		reviews.PUT("/:reviewId", reviewController.UpdateReview)
		reviews.DELETE("/:reviewId", reviewController.DeleteReview)
		reviews.POST("/:reviewId/images", reviewController.AddReviewImage)
	}

	// Booking routes
	bookings := api.Group("/bookings")
	bookings.Use(requireAuth)
	{
		bookings.GET("/current", bookingController.GetCurrentBookings)
		bookings.PUT("/:bookingId", bookingController.UpdateBooking)
		bookings.DELETE("/:bookingId", bookingController.DeleteBooking)
	}

	// Standalone image delete routes
	api.DELETE("/spot-images/:imageId", requireAuth, imageController.DeleteSpotImage)
	api.DELETE("/review-images/:imageId", requireAuth, imageController.DeleteReviewImage)
}

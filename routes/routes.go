// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"iranbazaar-api/config"
	"iranbazaar-api/controllers"
	"iranbazaar-api/middleware"
	"iranbazaar-api/repositories"
	"iranbazaar-api/services"
	"iranbazaar-api/storage"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, store storage.Storage, emailService *services.EmailService) {
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	userRepo := repositories.NewUserRepository(db)
	listingRepo := repositories.NewListingRepository(db, store)

	// Controllers
	authController := controllers.NewAuthController(userRepo, tokenService, emailService)
	accountController := controllers.NewAccountController(userRepo)
	listingController := controllers.NewListingController(listingRepo, store)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// Account routes (token required)
	accounts := api.Group("/accounts")
	accounts.Use(middleware.AuthMiddleware(tokenService))
	{
		accounts.GET("/profile", accountController.GetProfile)
	}

	// Listing routes: reads are public, mutations need a valid token
	listings := api.Group("/listings")
	{
		listings.GET("", listingController.GetListings)
		listings.GET("/:id", listingController.GetListing)
		listings.GET("/:id/images", listingController.GetListingImages)

		protected := listings.Group("")
		protected.Use(middleware.AuthMiddleware(tokenService))
		{
			protected.POST("", listingController.CreateListing)
			protected.PUT("/:id", listingController.UpdateListing)
			protected.PATCH("/:id", listingController.UpdateListing)
			protected.DELETE("/:id", listingController.DeleteListing)
			protected.POST("/:id/images", listingController.UploadListingImage)
		}
	}
}

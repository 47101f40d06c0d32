// File: /main.go
package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"iranbazaar-api/config"
	"iranbazaar-api/database"
	"iranbazaar-api/jobs"
	"iranbazaar-api/middleware"
	"iranbazaar-api/routes"
	"iranbazaar-api/services"
	"iranbazaar-api/storage"
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

	// Seed default categories
	if err := database.SeedCategories(db); err != nil {
		log.Printf("Warning: Failed to seed categories: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 20))

	// Pick the media storage backend
	var store storage.Storage
	if cfg.StorageBackend == "minio" {
		store, err = storage.NewMinioStorage(context.Background(),
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatal("Failed to initialize minio storage:", err)
		}
	} else {
		disk, err := storage.NewDiskStorage(cfg.MediaDir)
		if err != nil {
			log.Fatal("Failed to initialize disk storage:", err)
		}
		store = disk

		// Serve uploaded files and sweep orphaned ones
		router.Static("/media", disk.Root())
		cleanupJob := jobs.NewMediaCleanupJob(db, cfg.MediaDir, time.Hour)
		cleanupJob.Start()
		defer cleanupJob.Stop()
	}

	emailService := services.NewEmailService(cfg)

	// Setup routes
	routes.SetupRoutes(router, db, cfg, store, emailService)

	// Start server
	log.Printf("Starting IranBazaar API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

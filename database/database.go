// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"iranbazaar-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Listing{},
		&models.ListingImage{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Listings are served newest-first; back that ordering with an index.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_listings_created_at ON listings(created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for listings created_at: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_listing_images_listing_uploaded ON listing_images(listing_id, uploaded_at)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for listing_images: %v\n", err)
	}

	return nil
}

// SeedCategories populates the default category set. Listings may reference
// any of these or none at all.
func SeedCategories(db *gorm.DB) error {
	names := []string{
		"Vehicles",
		"Real Estate",
		"Electronics",
		"Furniture",
		"Jobs",
		"Services",
		"Other",
	}

	for _, name := range names {
		category := models.Category{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			fmt.Printf("Warning: Could not seed category %s: %v\n", name, err)
		}
	}

	return nil
}

// File: /repositories/listing_repository.go
package repositories

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"iranbazaar-api/models"
	"iranbazaar-api/storage"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingRepository owns Listing and ListingImage persistence. Deleting a
// listing also takes its image rows and their stored blobs with it.
type ListingRepository struct {
	db    *gorm.DB
	store storage.Storage
}

func NewListingRepository(db *gorm.DB, store storage.Storage) *ListingRepository {
	return &ListingRepository{db: db, store: store}
}

func (r *ListingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

func (r *ListingRepository) GetByID(id string) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.Preload("Images").Preload("Category").First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

// List returns all listings, newest first.
func (r *ListingRepository) List() ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Preload("Images").Preload("Category").
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *ListingRepository) Update(id string, updates map[string]interface{}) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.Model(&listing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return r.GetByID(id)
}

// Delete removes the listing and its image rows in one transaction, so a
// concurrent reader sees either all of them or none. Blob removal happens
// after commit; anything it misses is swept by the media cleanup job.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	var images []models.ListingImage

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListingNotFound
			}
			return err
		}

		if err := tx.Where("listing_id = ?", id).Find(&images).Error; err != nil {
			return err
		}

		if err := tx.Where("listing_id = ?", id).Delete(&models.ListingImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&listing).Error
	})
	if err != nil {
		return err
	}

	for _, image := range images {
		if err := r.store.Remove(ctx, image.Image); err != nil {
			log.Printf("Warning: could not remove stored file %s: %v", image.Image, err)
		}
	}

	return nil
}

// AttachImage records an uploaded blob against a listing. The blob itself
// must already be stored under key.
func (r *ListingRepository) AttachImage(listingID, key string) (*models.ListingImage, error) {
	if err := r.ensureListingExists(listingID); err != nil {
		return nil, err
	}

	image := models.ListingImage{
		ListingID: listingID,
		Image:     key,
	}
	if err := r.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ListingRepository) ListImages(listingID string) ([]models.ListingImage, error) {
	if err := r.ensureListingExists(listingID); err != nil {
		return nil, err
	}

	var images []models.ListingImage
	err := r.db.Where("listing_id = ?", listingID).
		Order("uploaded_at").
		Find(&images).Error
	return images, err
}

func (r *ListingRepository) ensureListingExists(id string) error {
	var count int64
	if err := r.db.Model(&models.Listing{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrListingNotFound
	}
	return nil
}

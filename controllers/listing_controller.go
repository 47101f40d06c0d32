// File: /controllers/listing_controller.go
package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"iranbazaar-api/models"
	"iranbazaar-api/repositories"
	"iranbazaar-api/serializers"
	"iranbazaar-api/storage"
	"iranbazaar-api/utils"
)

// ListingStore is the persistence surface the listing handlers need.
type ListingStore interface {
	Create(listing *models.Listing) error
	GetByID(id string) (*models.Listing, error)
	List() ([]models.Listing, error)
	Update(id string, updates map[string]interface{}) (*models.Listing, error)
	Delete(ctx context.Context, id string) error
	AttachImage(listingID, key string) (*models.ListingImage, error)
	ListImages(listingID string) ([]models.ListingImage, error)
}

type ListingController struct {
	listings ListingStore
	store    storage.Storage
}

func NewListingController(listings ListingStore, store storage.Storage) *ListingController {
	return &ListingController{listings: listings, store: store}
}

type CreateListingRequest struct {
	Title       string              `json:"title" binding:"required"`
	City        string              `json:"city" binding:"required"`
	State       string              `json:"state"`
	Price       decimal.NullDecimal `json:"price"`
	Description string              `json:"description"`
	ContactInfo string              `json:"contact_info" binding:"required"`
	CategoryID  *uint               `json:"category_id"`
}

func (lc *ListingController) GetListings(c *gin.Context) {
	listings, err := lc.listings.List()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch listings")
		return
	}

	c.JSON(http.StatusOK, serializers.SerializeListings(listings, requestBaseURL(c), lc.store.URLPath))
}

func (lc *ListingController) CreateListing(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if req.Price.Valid && !utils.IsValidPrice(req.Price.Decimal) {
		utils.SendValidationError(c, "price must be a non-negative amount with at most 2 decimal places")
		return
	}

	listing := models.Listing{
		ID:          uuid.New().String(),
		UserID:      &userID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		City:        req.City,
		State:       req.State,
		Price:       req.Price,
		Description: req.Description,
		ContactInfo: req.ContactInfo,
	}

	if err := lc.listings.Create(&listing); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create listing")
		return
	}

	created, err := lc.listings.GetByID(listing.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch created listing")
		return
	}

	c.JSON(http.StatusCreated, serializers.SerializeListing(created, requestBaseURL(c), lc.store.URLPath))
}

func (lc *ListingController) GetListing(c *gin.Context) {
	listing, err := lc.listings.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			utils.SendError(c, http.StatusNotFound, "Listing not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}

	c.JSON(http.StatusOK, serializers.SerializeListing(listing, requestBaseURL(c), lc.store.URLPath))
}

type UpdateListingRequest struct {
	Title       *string              `json:"title"`
	City        *string              `json:"city"`
	State       *string              `json:"state"`
	Price       *decimal.NullDecimal `json:"price"`
	Description *string              `json:"description"`
	ContactInfo *string              `json:"contact_info"`
	CategoryID  *uint                `json:"category_id"`
}

func (lc *ListingController) UpdateListing(c *gin.Context) {
	userID := c.GetString("user_id")
	listingID := c.Param("id")

	listing, err := lc.listings.GetByID(listingID)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			utils.SendError(c, http.StatusNotFound, "Listing not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}

	if listing.UserID == nil || *listing.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "You do not own this listing")
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			utils.SendValidationError(c, "title cannot be blank")
			return
		}
		updates["title"] = *req.Title
	}
	if req.City != nil {
		if *req.City == "" {
			utils.SendValidationError(c, "city cannot be blank")
			return
		}
		updates["city"] = *req.City
	}
	if req.ContactInfo != nil {
		if *req.ContactInfo == "" {
			utils.SendValidationError(c, "contact_info cannot be blank")
			return
		}
		updates["contact_info"] = *req.ContactInfo
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Price != nil {
		if req.Price.Valid && !utils.IsValidPrice(req.Price.Decimal) {
			utils.SendValidationError(c, "price must be a non-negative amount with at most 2 decimal places")
			return
		}
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}

	updated, err := lc.listings.Update(listingID, updates)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update listing")
		return
	}

	c.JSON(http.StatusOK, serializers.SerializeListing(updated, requestBaseURL(c), lc.store.URLPath))
}

func (lc *ListingController) DeleteListing(c *gin.Context) {
	userID := c.GetString("user_id")
	listingID := c.Param("id")

	listing, err := lc.listings.GetByID(listingID)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			utils.SendError(c, http.StatusNotFound, "Listing not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}

	if listing.UserID == nil || *listing.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "You do not own this listing")
		return
	}

	if err := lc.listings.Delete(c.Request.Context(), listingID); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete listing")
		return
	}

	utils.SendSuccess(c, "Listing deleted successfully", nil)
}

func (lc *ListingController) GetListingImages(c *gin.Context) {
	images, err := lc.listings.ListImages(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			utils.SendError(c, http.StatusNotFound, "Listing not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch images")
		return
	}

	c.JSON(http.StatusOK, serializers.SerializeListingImages(images, requestBaseURL(c), lc.store.URLPath))
}

func (lc *ListingController) UploadListingImage(c *gin.Context) {
	listingID := c.Param("id")

	if _, err := lc.listings.GetByID(listingID); err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			utils.SendError(c, http.StatusNotFound, "Listing not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.SendValidationError(c, "an image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	contentType, err := sniffContentType(file)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	if !utils.IsImageContentType(contentType) {
		utils.SendValidationError(c, "uploaded file is not an image")
		return
	}

	key := fmt.Sprintf("listings/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	if err := lc.store.Save(c.Request.Context(), key, file, fileHeader.Size, contentType); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	image, err := lc.listings.AttachImage(listingID, key)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to attach image")
		return
	}

	c.JSON(http.StatusCreated, serializers.SerializeListingImage(image, requestBaseURL(c), lc.store.URLPath))
}

// sniffContentType detects the payload type from the first 512 bytes and
// rewinds the file for the subsequent store write.
func sniffContentType(file io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

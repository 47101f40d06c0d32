// File: /serializers/listing_serializer.go
package serializers

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"iranbazaar-api/models"
)

// URLResolver maps a stored object key to the path or URL it is served
// from. Storage backends provide this.
type URLResolver func(key string) string

type ListingImageResponse struct {
	ID         uint      `json:"id"`
	Image      string    `json:"image"`
	ImageURL   *string   `json:"image_url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ListingResponse struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	City          string                 `json:"city"`
	State         string                 `json:"state"`
	Price         decimal.NullDecimal    `json:"price"`
	Description   string                 `json:"description"`
	ContactInfo   string                 `json:"contact_info"`
	CreatedAt     time.Time              `json:"created_at"`
	Category      *string                `json:"category,omitempty"`
	Images        []ListingImageResponse `json:"images"`
	PostedDaysAgo *int                   `json:"posted_days_ago"`
}

// SerializeListing builds the transport representation of a listing.
// baseURL is the scheme://host of the current request, used to make image
// URLs absolute.
func SerializeListing(listing *models.Listing, baseURL string, resolve URLResolver) ListingResponse {
	images := make([]ListingImageResponse, 0, len(listing.Images))
	for i := range listing.Images {
		images = append(images, SerializeListingImage(&listing.Images[i], baseURL, resolve))
	}

	var category *string
	if listing.Category != nil {
		category = &listing.Category.Name
	}

	return ListingResponse{
		ID:            listing.ID,
		Title:         listing.Title,
		City:          listing.City,
		State:         listing.State,
		Price:         listing.Price,
		Description:   listing.Description,
		ContactInfo:   listing.ContactInfo,
		CreatedAt:     listing.CreatedAt,
		Category:      category,
		Images:        images,
		PostedDaysAgo: postedDaysAgo(listing.CreatedAt, time.Now()),
	}
}

func SerializeListings(listings []models.Listing, baseURL string, resolve URLResolver) []ListingResponse {
	responses := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, SerializeListing(&listings[i], baseURL, resolve))
	}
	return responses
}

func SerializeListingImage(image *models.ListingImage, baseURL string, resolve URLResolver) ListingImageResponse {
	response := ListingImageResponse{
		ID:         image.ID,
		Image:      image.Image,
		UploadedAt: image.UploadedAt,
	}

	if image.Image == "" || resolve == nil {
		return response
	}

	switch url := resolve(image.Image); {
	case url == "":
		// unresolvable, image_url stays null
	case strings.Contains(url, "://"):
		response.ImageURL = &url
	case baseURL != "":
		absolute := strings.TrimSuffix(baseURL, "/") + url
		response.ImageURL = &absolute
	}

	return response
}

func SerializeListingImages(images []models.ListingImage, baseURL string, resolve URLResolver) []ListingImageResponse {
	responses := make([]ListingImageResponse, 0, len(images))
	for i := range images {
		responses = append(responses, SerializeListingImage(&images[i], baseURL, resolve))
	}
	return responses
}

// postedDaysAgo returns whole days between createdAt and now, or nil when
// createdAt was never set.
func postedDaysAgo(createdAt, now time.Time) *int {
	if createdAt.IsZero() {
		return nil
	}
	days := int(now.Sub(createdAt).Hours() / 24)
	return &days
}

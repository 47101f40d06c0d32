package serializers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iranbazaar-api/models"
	"iranbazaar-api/serializers"
)

func mediaResolver(key string) string {
	return "/media/" + key
}

func TestSerializeListing_PostedDaysAgo_Now(t *testing.T) {
	listing := &models.Listing{
		ID:        "listing-1",
		Title:     "Bike",
		City:      "Tehran",
		CreatedAt: time.Now(),
	}

	resp := serializers.SerializeListing(listing, "http://localhost:8080", mediaResolver)

	require.NotNil(t, resp.PostedDaysAgo)
	assert.Equal(t, 0, *resp.PostedDaysAgo)
}

func TestSerializeListing_PostedDaysAgo_ThreeDays(t *testing.T) {
	listing := &models.Listing{
		ID:        "listing-1",
		Title:     "Bike",
		City:      "Tehran",
		CreatedAt: time.Now().Add(-73 * time.Hour),
	}

	resp := serializers.SerializeListing(listing, "http://localhost:8080", mediaResolver)

	require.NotNil(t, resp.PostedDaysAgo)
	assert.Equal(t, 3, *resp.PostedDaysAgo)
}

func TestSerializeListing_PostedDaysAgo_UnsetCreatedAt(t *testing.T) {
	listing := &models.Listing{
		ID:    "listing-1",
		Title: "Bike",
		City:  "Tehran",
	}

	resp := serializers.SerializeListing(listing, "http://localhost:8080", mediaResolver)

	assert.Nil(t, resp.PostedDaysAgo)
}

func TestSerializeListingImage_AbsoluteURLFromBase(t *testing.T) {
	image := &models.ListingImage{
		ID:         7,
		ListingID:  "listing-1",
		Image:      "listings/abc.png",
		UploadedAt: time.Now(),
	}

	resp := serializers.SerializeListingImage(image, "http://localhost:8080", mediaResolver)

	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "http://localhost:8080/media/listings/abc.png", *resp.ImageURL)
	assert.Equal(t, "listings/abc.png", resp.Image)
}

func TestSerializeListingImage_AbsoluteResolverPassedThrough(t *testing.T) {
	image := &models.ListingImage{
		ID:        7,
		ListingID: "listing-1",
		Image:     "listings/abc.png",
	}

	minioResolver := func(key string) string {
		return "http://minio:9000/listing-images/" + key
	}

	resp := serializers.SerializeListingImage(image, "http://localhost:8080", minioResolver)

	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "http://minio:9000/listing-images/listings/abc.png", *resp.ImageURL)
}

func TestSerializeListingImage_UnresolvableIsNull(t *testing.T) {
	image := &models.ListingImage{
		ID:        7,
		ListingID: "listing-1",
		Image:     "listings/abc.png",
	}

	// No base URL to resolve a relative path against
	resp := serializers.SerializeListingImage(image, "", mediaResolver)
	assert.Nil(t, resp.ImageURL)

	// No stored path at all
	empty := &models.ListingImage{ID: 8, ListingID: "listing-1"}
	resp = serializers.SerializeListingImage(empty, "http://localhost:8080", mediaResolver)
	assert.Nil(t, resp.ImageURL)
}

func TestSerializeListing_NestedImages(t *testing.T) {
	listing := &models.Listing{
		ID:        "listing-1",
		Title:     "Bike",
		City:      "Tehran",
		CreatedAt: time.Now(),
		Images: []models.ListingImage{
			{ID: 1, ListingID: "listing-1", Image: "listings/a.png"},
			{ID: 2, ListingID: "listing-1", Image: "listings/b.png"},
		},
	}

	resp := serializers.SerializeListing(listing, "http://localhost:8080", mediaResolver)

	require.Len(t, resp.Images, 2)
	assert.Equal(t, uint(1), resp.Images[0].ID)
	assert.Equal(t, uint(2), resp.Images[1].ID)
}

func TestSerializeListing_CategoryName(t *testing.T) {
	listing := &models.Listing{
		ID:        "listing-1",
		Title:     "Bike",
		City:      "Tehran",
		CreatedAt: time.Now(),
		Category:  &models.Category{ID: 3, Name: "Vehicles"},
	}

	resp := serializers.SerializeListing(listing, "http://localhost:8080", mediaResolver)

	require.NotNil(t, resp.Category)
	assert.Equal(t, "Vehicles", *resp.Category)

	listing.Category = nil
	resp = serializers.SerializeListing(listing, "http://localhost:8080", mediaResolver)
	assert.Nil(t, resp.Category)
}

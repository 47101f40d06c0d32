package controllers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"iranbazaar-api/models"
	"iranbazaar-api/services"
)

// --- Mocks ---

// MockUserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockTokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) IssuePair(userID, username string) (*services.TokenPair, error) {
	args := m.Called(userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

func (m *MockTokenIssuer) Refresh(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

// MockWelcomeMailer
type MockWelcomeMailer struct {
	mock.Mock
}

func (m *MockWelcomeMailer) SendWelcomeEmail(email, username string) error {
	args := m.Called(email, username)
	return args.Error(0)
}

// MockListingStore
type MockListingStore struct {
	mock.Mock
}

func (m *MockListingStore) Create(listing *models.Listing) error {
	args := m.Called(listing)
	return args.Error(0)
}

func (m *MockListingStore) GetByID(id string) (*models.Listing, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockListingStore) List() ([]models.Listing, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}

func (m *MockListingStore) Update(id string, updates map[string]interface{}) (*models.Listing, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockListingStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingStore) AttachImage(listingID, key string) (*models.ListingImage, error) {
	args := m.Called(listingID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ListingImage), args.Error(1)
}

func (m *MockListingStore) ListImages(listingID string) ([]models.ListingImage, error) {
	args := m.Called(listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ListingImage), args.Error(1)
}

// MockStorage implements storage.Storage with a fixed /media URL layout.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, r, size, contentType)
	return args.Error(0)
}

func (m *MockStorage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) URLPath(key string) string {
	return "/media/" + key
}

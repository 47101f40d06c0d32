// File: /models/listing.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is an optional, name-only grouping for listings.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`
}

type Listing struct {
	ID          string              `json:"id" gorm:"primaryKey;size:191"`
	UserID      *string             `json:"user_id" gorm:"size:191;index"`
	CategoryID  *uint               `json:"category_id"`
	Title       string              `json:"title" gorm:"not null;size:255"`
	City        string              `json:"city" gorm:"not null;size:100"`
	State       string              `json:"state" gorm:"size:100"`
	Price       decimal.NullDecimal `json:"price" gorm:"type:decimal(10,2)"`
	Description string              `json:"description" gorm:"type:text"`
	ContactInfo string              `json:"contact_info" gorm:"not null;size:255"`
	CreatedAt   time.Time           `json:"created_at"`

	// Relationships. The owner reference is nulled when the user goes
	// away; images always go down with the listing.
	User     *User          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Category *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Images   []ListingImage `json:"images" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// ListingImage is one uploaded image attached to a listing. Image holds
// the blob-store object key; the file itself lives out-of-band.
type ListingImage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ListingID  string    `json:"listing_id" gorm:"not null;size:191;index"`
	Image      string    `json:"image" gorm:"not null;size:500"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:150"`
	Email     string    `json:"email" gorm:"size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Listings []Listing `json:"listings,omitempty" gorm:"foreignKey:UserID"`
}

package models

import (
	"time"
)

// User is the identity record referenced by listings, bookings and reviews.
// Accounts are owned by the identity subsystem; this service only reads them
// and relies on the cascade constraints when one is removed.
type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	FirstName string    `json:"first_name" gorm:"size:150"`
	LastName  string    `json:"last_name" gorm:"size:150"`
	Email     string    `json:"email" gorm:"size:254"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Listings []Listing `json:"-" gorm:"foreignKey:HostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Bookings []Booking `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Reviews  []Review  `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

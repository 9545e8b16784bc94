package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a rating left by a user for a listing. The composite unique
// index keeps it to one review per (listing, user) pair.
type Review struct {
	ReviewID  uuid.UUID `json:"review_id" gorm:"type:uuid;primaryKey"`
	ListingID uuid.UUID `json:"listing_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_listing_user;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_listing_user;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	User    User     `json:"user" gorm:"foreignKey:UserID"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ReviewID == uuid.Nil {
		r.ReviewID = uuid.New()
	}
	return nil
}

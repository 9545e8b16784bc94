package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Listing is a bookable property owned by a host.
type Listing struct {
	ListingID     uuid.UUID       `json:"listing_id" gorm:"type:uuid;primaryKey"`
	Title         string          `json:"title" gorm:"size:255;not null"`
	Description   string          `json:"description" gorm:"type:text"`
	Location      string          `json:"location" gorm:"size:255;index;not null"`
	PricePerNight decimal.Decimal `json:"price_per_night" gorm:"type:numeric(10,2);index;check:price_per_night >= 0"`
	Bedrooms      uint            `json:"bedrooms"`
	Bathrooms     uint            `json:"bathrooms"`
	MaxGuests     uint            `json:"max_guests"`
	HostID        uint            `json:"host_id" gorm:"not null;index"`
	IsAvailable   *bool           `json:"is_available" gorm:"default:true"`
	CreatedAt     time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Host     User      `json:"host" gorm:"foreignKey:HostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Reviews  []Review  `json:"reviews" gorm:"foreignKey:ListingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Bookings []Booking `json:"-" gorm:"foreignKey:ListingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	return nil
}

// AverageRating computes the mean rating of the loaded reviews, rounded to
// two decimal places. A listing without reviews rates 0.
func (l *Listing) AverageRating() float64 {
	if len(l.Reviews) == 0 {
		return 0
	}
	var total float64
	for _, review := range l.Reviews {
		total += float64(review.Rating)
	}
	avg := total / float64(len(l.Reviews))
	return math.Round(avg*100) / 100
}

func (l *Listing) TotalReviews() int {
	return len(l.Reviews)
}

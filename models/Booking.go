package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
	ErrGuestsExceedCapacity    = errors.New("number of guests exceeds the listing's capacity")
)

// Booking is a reservation of a Listing by a User for a date range.
type Booking struct {
	BookingID      uuid.UUID       `json:"booking_id" gorm:"type:uuid;primaryKey"`
	ListingID      uuid.UUID       `json:"listing_id" gorm:"type:uuid;not null;index"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	CheckInDate    time.Time       `json:"check_in_date" gorm:"type:date;not null"`
	CheckOutDate   time.Time       `json:"check_out_date" gorm:"type:date;not null"`
	NumberOfGuests uint            `json:"number_of_guests" gorm:"not null;check:number_of_guests > 0"`
	TotalPrice     decimal.Decimal `json:"total_price" gorm:"type:numeric(10,2);check:total_price >= 0"`
	Status         string          `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt      time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	return nil
}

// BeforeSave enforces the date-ordering and guest-capacity invariants inside
// the transaction of the write itself, so a booking that slipped past the
// handler-level validation still cannot commit.
func (b *Booking) BeforeSave(tx *gorm.DB) error {
	if !b.CheckOutDate.After(b.CheckInDate) {
		return ErrCheckOutNotAfterCheckIn
	}

	var listing Listing
	if err := tx.First(&listing, "listing_id = ?", b.ListingID).Error; err != nil {
		return err
	}
	if b.NumberOfGuests > listing.MaxGuests {
		return ErrGuestsExceedCapacity
	}
	return nil
}

// Nights is the whole-day difference between check-out and check-in. It is
// derived on demand and never stored.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

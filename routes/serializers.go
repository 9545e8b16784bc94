package routes

import (
	"time"

	"github.com/qwabena37/alx-travel-app-0x01/models"
)

const dateLayout = "2006-01-02"

// Response shapes. Identifiers, timestamps, nested relations and the derived
// aggregates are output-only; they are never read back from client payloads.

type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ReviewResponse struct {
	ReviewID  string       `json:"review_id"`
	User      UserResponse `json:"user"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type ListingResponse struct {
	ListingID     string           `json:"listing_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	PricePerNight string           `json:"price_per_night"`
	Bedrooms      uint             `json:"bedrooms"`
	Bathrooms     uint             `json:"bathrooms"`
	MaxGuests     uint             `json:"max_guests"`
	Host          UserResponse     `json:"host"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	IsAvailable   bool             `json:"is_available"`
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	TotalReviews  int              `json:"total_reviews"`
}

type BookingResponse struct {
	BookingID      string          `json:"booking_id"`
	Listing        ListingResponse `json:"listing"`
	User           UserResponse    `json:"user"`
	CheckInDate    string          `json:"check_in_date"`
	CheckOutDate   string          `json:"check_out_date"`
	NumberOfGuests uint            `json:"number_of_guests"`
	TotalPrice     string          `json:"total_price"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Nights         int             `json:"nights"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func NewReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:  review.ReviewID.String(),
		User:      NewUserResponse(review.User),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// NewListingResponse renders a listing with its host, its reviews and the
// aggregates recomputed from the review set loaded for this request.
func NewListingResponse(listing models.Listing) ListingResponse {
	reviews := make([]ReviewResponse, 0, len(listing.Reviews))
	for _, review := range listing.Reviews {
		reviews = append(reviews, NewReviewResponse(review))
	}

	isAvailable := true
	if listing.IsAvailable != nil {
		isAvailable = *listing.IsAvailable
	}

	return ListingResponse{
		ListingID:     listing.ListingID.String(),
		Title:         listing.Title,
		Description:   listing.Description,
		Location:      listing.Location,
		PricePerNight: listing.PricePerNight.StringFixed(2),
		Bedrooms:      listing.Bedrooms,
		Bathrooms:     listing.Bathrooms,
		MaxGuests:     listing.MaxGuests,
		Host:          NewUserResponse(listing.Host),
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
		IsAvailable:   isAvailable,
		Reviews:       reviews,
		AverageRating: listing.AverageRating(),
		TotalReviews:  listing.TotalReviews(),
	}
}

func NewBookingResponse(booking models.Booking) BookingResponse {
	response := BookingResponse{
		BookingID:      booking.BookingID.String(),
		CheckInDate:    booking.CheckInDate.Format(dateLayout),
		CheckOutDate:   booking.CheckOutDate.Format(dateLayout),
		NumberOfGuests: booking.NumberOfGuests,
		TotalPrice:     booking.TotalPrice.StringFixed(2),
		Status:         booking.Status,
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
		Nights:         booking.Nights(),
	}
	if booking.Listing != nil {
		response.Listing = NewListingResponse(*booking.Listing)
	}
	if booking.User != nil {
		response.User = NewUserResponse(*booking.User)
	}
	return response
}

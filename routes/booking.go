package routes

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/qwabena37/alx-travel-app-0x01/models"
	"github.com/qwabena37/alx-travel-app-0x01/storage"
	"github.com/qwabena37/alx-travel-app-0x01/utils"
)

// CreateBookingInput is the flat write shape: the listing is referenced by
// its identifier instead of a nested object.
type CreateBookingInput struct {
	ListingID      string           `json:"listing_id" validate:"required"`
	UserID         uint             `json:"user_id" validate:"required"`
	CheckInDate    string           `json:"check_in_date" validate:"required"`
	CheckOutDate   string           `json:"check_out_date" validate:"required"`
	NumberOfGuests uint             `json:"number_of_guests" validate:"required,min=1"`
	TotalPrice     *decimal.Decimal `json:"total_price" validate:"required"`
	Status         string           `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

type UpdateBookingInput struct {
	CheckInDate    string           `json:"check_in_date" validate:"required"`
	CheckOutDate   string           `json:"check_out_date" validate:"required"`
	NumberOfGuests uint             `json:"number_of_guests" validate:"required,min=1"`
	TotalPrice     *decimal.Decimal `json:"total_price" validate:"required"`
	Status         string           `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

type PatchBookingInput struct {
	CheckInDate    *string          `json:"check_in_date"`
	CheckOutDate   *string          `json:"check_out_date"`
	NumberOfGuests *uint            `json:"number_of_guests" validate:"omitempty,min=1"`
	TotalPrice     *decimal.Decimal `json:"total_price"`
	Status         *string          `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

func CreateBooking(ctx iris.Context) {
	var input CreateBookingInput

	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	listingID, err := uuid.Parse(input.ListingID)
	if err != nil {
		utils.CreateValidationError("listing_id is not a valid UUID", ctx)
		return
	}

	checkIn, err := time.Parse(dateLayout, input.CheckInDate)
	if err != nil {
		utils.CreateValidationError("check_in_date must be a date in YYYY-MM-DD format", ctx)
		return
	}
	checkOut, err := time.Parse(dateLayout, input.CheckOutDate)
	if err != nil {
		utils.CreateValidationError("check_out_date must be a date in YYYY-MM-DD format", ctx)
		return
	}
	if !checkOut.After(checkIn) {
		utils.CreateValidationError("Check-out date must be after check-in date", ctx)
		return
	}

	if input.TotalPrice.IsNegative() {
		utils.CreateValidationError("total_price must not be negative", ctx)
		return
	}

	var listing models.Listing
	if err := storage.DB.First(&listing, "listing_id = ?", listingID).Error; err != nil {
		utils.CreateValidationError("listing_id does not reference an existing listing", ctx)
		return
	}

	if input.NumberOfGuests > listing.MaxGuests {
		utils.CreateValidationError(
			fmt.Sprintf("Number of guests cannot exceed %d", listing.MaxGuests), ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, input.UserID).Error; err != nil {
		utils.CreateValidationError("user_id does not reference an existing user", ctx)
		return
	}

	status := input.Status
	if status == "" {
		status = models.BookingStatusPending
	}

	booking := models.Booking{
		ListingID:      listingID,
		UserID:         input.UserID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: input.NumberOfGuests,
		TotalPrice:     *input.TotalPrice,
		Status:         status,
	}

	if err := storage.DB.Create(&booking).Error; err != nil {
		handleBookingWriteError(err, ctx)
		return
	}

	created := getBookingAndAssociations(booking.BookingID.String(), ctx)
	if created == nil {
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(NewBookingResponse(*created))
}

func GetBookings(ctx iris.Context) {
	var bookings []models.Booking
	result := storage.DB.Preload("Listing.Host").
		Preload("Listing.Reviews.User").
		Preload("User").
		Order("created_at DESC").
		Find(&bookings)

	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, NewBookingResponse(booking))
	}

	ctx.JSON(responses)
}

func GetBooking(ctx iris.Context) {
	id := ctx.Params().Get("id")

	booking := getBookingAndAssociations(id, ctx)
	if booking == nil {
		return
	}

	ctx.JSON(NewBookingResponse(*booking))
}

func UpdateBooking(ctx iris.Context) {
	id := ctx.Params().Get("id")

	bookingID, ok := parseBookingID(id, ctx)
	if !ok {
		return
	}

	var booking models.Booking
	result := storage.DB.Find(&booking, "booking_id = ?", bookingID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input UpdateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn, err := time.Parse(dateLayout, input.CheckInDate)
	if err != nil {
		utils.CreateValidationError("check_in_date must be a date in YYYY-MM-DD format", ctx)
		return
	}
	checkOut, err := time.Parse(dateLayout, input.CheckOutDate)
	if err != nil {
		utils.CreateValidationError("check_out_date must be a date in YYYY-MM-DD format", ctx)
		return
	}

	if input.TotalPrice.IsNegative() {
		utils.CreateValidationError("total_price must not be negative", ctx)
		return
	}

	booking.CheckInDate = checkIn
	booking.CheckOutDate = checkOut
	booking.NumberOfGuests = input.NumberOfGuests
	booking.TotalPrice = *input.TotalPrice
	if input.Status != "" {
		booking.Status = input.Status
	}

	if !validateBookingAgainstListing(&booking, ctx) {
		return
	}

	if err := storage.DB.Save(&booking).Error; err != nil {
		handleBookingWriteError(err, ctx)
		return
	}

	updated := getBookingAndAssociations(id, ctx)
	if updated == nil {
		return
	}
	ctx.JSON(NewBookingResponse(*updated))
}

func PartialUpdateBooking(ctx iris.Context) {
	id := ctx.Params().Get("id")

	bookingID, ok := parseBookingID(id, ctx)
	if !ok {
		return
	}

	var booking models.Booking
	result := storage.DB.Find(&booking, "booking_id = ?", bookingID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input PatchBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.CheckInDate != nil {
		checkIn, err := time.Parse(dateLayout, *input.CheckInDate)
		if err != nil {
			utils.CreateValidationError("check_in_date must be a date in YYYY-MM-DD format", ctx)
			return
		}
		booking.CheckInDate = checkIn
	}
	if input.CheckOutDate != nil {
		checkOut, err := time.Parse(dateLayout, *input.CheckOutDate)
		if err != nil {
			utils.CreateValidationError("check_out_date must be a date in YYYY-MM-DD format", ctx)
			return
		}
		booking.CheckOutDate = checkOut
	}
	if input.NumberOfGuests != nil {
		booking.NumberOfGuests = *input.NumberOfGuests
	}
	if input.TotalPrice != nil {
		if input.TotalPrice.IsNegative() {
			utils.CreateValidationError("total_price must not be negative", ctx)
			return
		}
		booking.TotalPrice = *input.TotalPrice
	}
	if input.Status != nil {
		if *input.Status == "" {
			utils.CreateValidationError("status must be one of pending, confirmed, cancelled, completed", ctx)
			return
		}
		booking.Status = *input.Status
	}

	if !validateBookingAgainstListing(&booking, ctx) {
		return
	}

	if err := storage.DB.Save(&booking).Error; err != nil {
		handleBookingWriteError(err, ctx)
		return
	}

	updated := getBookingAndAssociations(id, ctx)
	if updated == nil {
		return
	}
	ctx.JSON(NewBookingResponse(*updated))
}

func DeleteBooking(ctx iris.Context) {
	id := ctx.Params().Get("id")

	bookingID, ok := parseBookingID(id, ctx)
	if !ok {
		return
	}

	var booking models.Booking
	result := storage.DB.Find(&booking, "booking_id = ?", bookingID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&models.Booking{}, "booking_id = ?", bookingID).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

// validateBookingAgainstListing duplicates the storage-layer checks with
// descriptive messages, so callers see a 400 instead of a bare constraint
// failure.
func validateBookingAgainstListing(booking *models.Booking, ctx iris.Context) bool {
	if !booking.CheckOutDate.After(booking.CheckInDate) {
		utils.CreateValidationError("Check-out date must be after check-in date", ctx)
		return false
	}

	var listing models.Listing
	if err := storage.DB.First(&listing, "listing_id = ?", booking.ListingID).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return false
	}
	if booking.NumberOfGuests > listing.MaxGuests {
		utils.CreateValidationError(
			fmt.Sprintf("Number of guests cannot exceed %d", listing.MaxGuests), ctx)
		return false
	}
	return true
}

func handleBookingWriteError(err error, ctx iris.Context) {
	if errors.Is(err, models.ErrCheckOutNotAfterCheckIn) || errors.Is(err, models.ErrGuestsExceedCapacity) {
		utils.CreateValidationError(err.Error(), ctx)
		return
	}
	utils.CreateInternalServerError(ctx)
}

func parseBookingID(id string, ctx iris.Context) (uuid.UUID, bool) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		utils.CreateNotFound(ctx)
		return uuid.Nil, false
	}
	return bookingID, true
}

func getBookingAndAssociations(id string, ctx iris.Context) *models.Booking {
	bookingID, ok := parseBookingID(id, ctx)
	if !ok {
		return nil
	}

	var booking models.Booking
	result := storage.DB.Preload("Listing.Host").
		Preload("Listing.Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.created_at DESC") }).
		Preload("Listing.Reviews.User").
		Preload("User").
		Find(&booking, "booking_id = ?", bookingID)

	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return nil
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return nil
	}

	return &booking
}

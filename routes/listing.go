package routes

import (
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/qwabena37/alx-travel-app-0x01/models"
	"github.com/qwabena37/alx-travel-app-0x01/storage"
	"github.com/qwabena37/alx-travel-app-0x01/utils"
)

type CreateListingInput struct {
	Title         string           `json:"title" validate:"required,max=255"`
	Description   string           `json:"description" validate:"required"`
	Location      string           `json:"location" validate:"required,max=255"`
	PricePerNight *decimal.Decimal `json:"price_per_night" validate:"required"`
	Bedrooms      *uint            `json:"bedrooms" validate:"required"`
	Bathrooms     *uint            `json:"bathrooms" validate:"required"`
	MaxGuests     *uint            `json:"max_guests" validate:"required"`
	IsAvailable   *bool            `json:"is_available"`
	HostID        uint             `json:"host_id" validate:"required"`
}

type UpdateListingInput struct {
	Title         string           `json:"title" validate:"required,max=255"`
	Description   string           `json:"description" validate:"required"`
	Location      string           `json:"location" validate:"required,max=255"`
	PricePerNight *decimal.Decimal `json:"price_per_night" validate:"required"`
	Bedrooms      *uint            `json:"bedrooms" validate:"required"`
	Bathrooms     *uint            `json:"bathrooms" validate:"required"`
	MaxGuests     *uint            `json:"max_guests" validate:"required"`
	IsAvailable   *bool            `json:"is_available"`
}

type PatchListingInput struct {
	Title         *string          `json:"title" validate:"omitempty,max=255"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location" validate:"omitempty,max=255"`
	PricePerNight *decimal.Decimal `json:"price_per_night"`
	Bedrooms      *uint            `json:"bedrooms"`
	Bathrooms     *uint            `json:"bathrooms"`
	MaxGuests     *uint            `json:"max_guests"`
	IsAvailable   *bool            `json:"is_available"`
}

func CreateListing(ctx iris.Context) {
	var input CreateListingInput

	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.PricePerNight.IsNegative() {
		utils.CreateValidationError("price_per_night must not be negative", ctx)
		return
	}

	var host models.User
	if err := storage.DB.First(&host, input.HostID).Error; err != nil {
		utils.CreateValidationError("host_id does not reference an existing user", ctx)
		return
	}

	listing := models.Listing{
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		PricePerNight: *input.PricePerNight,
		Bedrooms:      *input.Bedrooms,
		Bathrooms:     *input.Bathrooms,
		MaxGuests:     *input.MaxGuests,
		HostID:        input.HostID,
		IsAvailable:   input.IsAvailable,
	}

	if err := storage.DB.Create(&listing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	created := getListingAndAssociations(listing.ListingID.String(), ctx)
	if created == nil {
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(NewListingResponse(*created))
}

func GetListings(ctx iris.Context) {
	var listings []models.Listing
	result := storage.DB.Preload("Host").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.created_at DESC") }).
		Preload("Reviews.User").
		Order("created_at DESC").
		Find(&listings)

	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	responses := make([]ListingResponse, 0, len(listings))
	for _, listing := range listings {
		responses = append(responses, NewListingResponse(listing))
	}

	ctx.JSON(responses)
}

func GetListing(ctx iris.Context) {
	id := ctx.Params().Get("id")

	listing := getListingAndAssociations(id, ctx)
	if listing == nil {
		return
	}

	ctx.JSON(NewListingResponse(*listing))
}

func UpdateListing(ctx iris.Context) {
	id := ctx.Params().Get("id")

	listingID, ok := parseListingID(id, ctx)
	if !ok {
		return
	}

	var listing models.Listing
	result := storage.DB.Find(&listing, "listing_id = ?", listingID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input UpdateListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.PricePerNight.IsNegative() {
		utils.CreateValidationError("price_per_night must not be negative", ctx)
		return
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.Location = input.Location
	listing.PricePerNight = *input.PricePerNight
	listing.Bedrooms = *input.Bedrooms
	listing.Bathrooms = *input.Bathrooms
	listing.MaxGuests = *input.MaxGuests
	if input.IsAvailable != nil {
		listing.IsAvailable = input.IsAvailable
	}

	if err := storage.DB.Save(&listing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	updated := getListingAndAssociations(id, ctx)
	if updated == nil {
		return
	}
	ctx.JSON(NewListingResponse(*updated))
}

func PartialUpdateListing(ctx iris.Context) {
	id := ctx.Params().Get("id")

	listingID, ok := parseListingID(id, ctx)
	if !ok {
		return
	}

	var listing models.Listing
	result := storage.DB.Find(&listing, "listing_id = ?", listingID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	var input PatchListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if input.PricePerNight != nil {
		if input.PricePerNight.IsNegative() {
			utils.CreateValidationError("price_per_night must not be negative", ctx)
			return
		}
		listing.PricePerNight = *input.PricePerNight
	}
	if input.Bedrooms != nil {
		listing.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		listing.Bathrooms = *input.Bathrooms
	}
	if input.MaxGuests != nil {
		listing.MaxGuests = *input.MaxGuests
	}
	if input.IsAvailable != nil {
		listing.IsAvailable = input.IsAvailable
	}

	if err := storage.DB.Save(&listing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	updated := getListingAndAssociations(id, ctx)
	if updated == nil {
		return
	}
	ctx.JSON(NewListingResponse(*updated))
}

// DeleteListing removes a listing together with its bookings and reviews in
// one transaction.
func DeleteListing(ctx iris.Context) {
	id := ctx.Params().Get("id")

	listingID, ok := parseListingID(id, ctx)
	if !ok {
		return
	}

	var listing models.Listing
	result := storage.DB.Find(&listing, "listing_id = ?", listingID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", listingID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", listingID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Listing{}, "listing_id = ?", listingID).Error
	})
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

func parseListingID(id string, ctx iris.Context) (uuid.UUID, bool) {
	listingID, err := uuid.Parse(id)
	if err != nil {
		utils.CreateNotFound(ctx)
		return uuid.Nil, false
	}
	return listingID, true
}

func getListingAndAssociations(id string, ctx iris.Context) *models.Listing {
	listingID, ok := parseListingID(id, ctx)
	if !ok {
		return nil
	}

	var listing models.Listing
	result := storage.DB.Preload("Host").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("reviews.created_at DESC") }).
		Preload("Reviews.User").
		Find(&listing, "listing_id = ?", listingID)

	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return nil
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return nil
	}

	return &listing
}

package routes

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/qwabena37/alx-travel-app-0x01/models"
	"github.com/qwabena37/alx-travel-app-0x01/storage"
)

var sampleUsers = []models.User{
	{Username: "john_host", FirstName: "John", LastName: "Doe", Email: "john@example.com"},
	{Username: "jane_traveler", FirstName: "Jane", LastName: "Smith", Email: "jane@example.com"},
	{Username: "mike_guest", FirstName: "Mike", LastName: "Johnson", Email: "mike@example.com"},
	{Username: "sarah_host", FirstName: "Sarah", LastName: "Wilson", Email: "sarah@example.com"},
	{Username: "david_explorer", FirstName: "David", LastName: "Brown", Email: "david@example.com"},
}

var sampleListings = []models.Listing{
	{
		Title:         "Cozy Beachfront Villa",
		Description:   "Beautiful villa with stunning ocean views and private beach access.",
		Location:      "Miami, Florida",
		PricePerNight: decimal.RequireFromString("250.00"),
		Bedrooms:      3,
		Bathrooms:     2,
		MaxGuests:     6,
	},
	{
		Title:         "Mountain Cabin Retreat",
		Description:   "Peaceful cabin nestled in the mountains with hiking trails nearby.",
		Location:      "Aspen, Colorado",
		PricePerNight: decimal.RequireFromString("180.00"),
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     4,
	},
	{
		Title:         "Urban Loft Downtown",
		Description:   "Modern loft in the heart of the city with easy access to attractions.",
		Location:      "New York, NY",
		PricePerNight: decimal.RequireFromString("300.00"),
		Bedrooms:      1,
		Bathrooms:     1,
		MaxGuests:     2,
	},
	{
		Title:         "Countryside Farmhouse",
		Description:   "Charming farmhouse surrounded by rolling hills and farmland.",
		Location:      "Tuscany, Italy",
		PricePerNight: decimal.RequireFromString("200.00"),
		Bedrooms:      4,
		Bathrooms:     3,
		MaxGuests:     8,
	},
	{
		Title:         "Desert Oasis Resort",
		Description:   "Luxurious resort with pool and spa amenities in the desert.",
		Location:      "Scottsdale, Arizona",
		PricePerNight: decimal.RequireFromString("400.00"),
		Bedrooms:      2,
		Bathrooms:     2,
		MaxGuests:     4,
	},
}

var reviewComments = []string{
	"Amazing place! Clean, comfortable, and great location.",
	"Perfect for a family vacation. Host was very responsive.",
	"Beautiful property with stunning views. Highly recommended!",
	"Good value for money. Would definitely stay again.",
	"Excellent amenities and very peaceful surroundings.",
	"Great experience overall. The photos don't do it justice!",
	"Convenient location with easy access to local attractions.",
	"Host went above and beyond to make our stay comfortable.",
}

// SeedDatabase fills the store with sample users, listings, bookings and
// reviews. Users are looked up by username, so re-running never duplicates
// them; every other phase appends rows.
func SeedDatabase(listingCount, bookingCount, reviewCount int) error {
	users, err := seedUsers()
	if err != nil {
		return err
	}
	fmt.Printf("Created %d users\n", len(users))

	listings, err := seedListings(users, listingCount)
	if err != nil {
		return err
	}
	fmt.Printf("Created %d listings\n", len(listings))

	bookings, err := seedBookings(users, listings, bookingCount)
	if err != nil {
		return err
	}
	fmt.Printf("Created %d bookings\n", len(bookings))

	reviews, err := seedReviews(users, listings, reviewCount)
	if err != nil {
		return err
	}
	fmt.Printf("Created %d reviews\n", len(reviews))

	fmt.Println("Database seeding completed successfully!")
	return nil
}

func seedUsers() ([]models.User, error) {
	users := make([]models.User, 0, len(sampleUsers))
	for _, data := range sampleUsers {
		var user models.User
		err := storage.DB.Where(models.User{Username: data.Username}).
			Attrs(data).
			FirstOrCreate(&user).Error
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func seedListings(users []models.User, count int) ([]models.Listing, error) {
	listings := make([]models.Listing, 0, count)

	for i := 0; i < count; i++ {
		base := sampleListings[i%len(sampleListings)]
		listing := base
		listing.HostID = users[rand.Intn(len(users))].ID

		// Beyond the curated pool, replicate with a perturbed price and a
		// variant title.
		if i >= len(sampleListings) {
			listing.Title = fmt.Sprintf("%s - Variant %d", base.Title, i+1)
			perturbation := decimal.NewFromInt(int64(rand.Intn(151) - 50))
			listing.PricePerNight = base.PricePerNight.Add(perturbation)
		}

		if err := storage.DB.Create(&listing).Error; err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func seedBookings(users []models.User, listings []models.Listing, count int) ([]models.Booking, error) {
	statuses := []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCompleted,
	}

	bookings := make([]models.Booking, 0, count)
	for i := 0; i < count; i++ {
		listing := listings[rand.Intn(len(listings))]
		guest := pickNonHost(users, listing.HostID)

		today := time.Now().UTC().Truncate(24 * time.Hour)
		checkIn := today.AddDate(0, 0, rand.Intn(90)+1)
		nights := rand.Intn(14) + 1
		checkOut := checkIn.AddDate(0, 0, nights)

		booking := models.Booking{
			ListingID:      listing.ListingID,
			UserID:         guest.ID,
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			NumberOfGuests: uint(rand.Intn(int(listing.MaxGuests))) + 1,
			TotalPrice:     listing.PricePerNight.Mul(decimal.NewFromInt(int64(nights))),
			Status:         statuses[rand.Intn(len(statuses))],
		}

		if err := storage.DB.Create(&booking).Error; err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func seedReviews(users []models.User, listings []models.Listing, count int) ([]models.Review, error) {
	reviews := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		listing := listings[rand.Intn(len(listings))]
		reviewer := pickNonHost(users, listing.HostID)

		// One review per (listing, user); a pair that already reviewed is
		// skipped rather than retried, so the run may produce fewer reviews
		// than requested.
		var existing models.Review
		err := storage.DB.Where("listing_id = ? AND user_id = ?", listing.ListingID, reviewer.ID).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		review := models.Review{
			ListingID: listing.ListingID,
			UserID:    reviewer.ID,
			Rating:    rand.Intn(3) + 3, // bias towards positive reviews
			Comment:   reviewComments[rand.Intn(len(reviewComments))],
		}

		if err := storage.DB.Create(&review).Error; err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

// pickNonHost returns a random user other than the listing's host.
func pickNonHost(users []models.User, hostID uint) models.User {
	candidates := make([]models.User, 0, len(users))
	for _, user := range users {
		if user.ID != hostID {
			candidates = append(candidates, user)
		}
	}
	return candidates[rand.Intn(len(candidates))]
}

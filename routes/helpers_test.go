package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qwabena37/alx-travel-app-0x01/models"
	"github.com/qwabena37/alx-travel-app-0x01/storage"
)

// setupTestDB points storage.DB at a fresh in-memory database for one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Review{},
	))

	storage.DB = db
	return db
}

// buildTestApp wires the same parties as main.go.
func buildTestApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	listings := app.Party("/listings")
	{
		listings.Get("/", GetListings)
		listings.Post("/", CreateListing)
		listings.Get("/{id}", GetListing)
		listings.Put("/{id}", UpdateListing)
		listings.Patch("/{id}", PartialUpdateListing)
		listings.Delete("/{id}", DeleteListing)
	}

	bookings := app.Party("/bookings")
	{
		bookings.Get("/", GetBookings)
		bookings.Post("/", CreateBooking)
		bookings.Get("/{id}", GetBooking)
		bookings.Put("/{id}", UpdateBooking)
		bookings.Patch("/{id}", PartialUpdateBooking)
		bookings.Delete("/{id}", DeleteBooking)
	}

	if err := app.Build(); err != nil {
		panic(err)
	}

	return app
}

func doJSON(t *testing.T, app *iris.Application, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), out))
}

func date(value string) time.Time {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()

	user := models.User{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
	}
	require.NoError(t, storage.DB.Create(&user).Error)
	return user
}

func createTestListing(t *testing.T, host models.User, price string, maxGuests uint) models.Listing {
	t.Helper()

	listing := models.Listing{
		Title:         "Test Listing",
		Description:   "A listing created for tests.",
		Location:      "Testville",
		PricePerNight: decimal.RequireFromString(price),
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     maxGuests,
		HostID:        host.ID,
	}
	require.NoError(t, storage.DB.Create(&listing).Error)
	return listing
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"

	"github.com/qwabena37/alx-travel-app-0x01/routes"
	"github.com/qwabena37/alx-travel-app-0x01/storage"
)

func main() {
	godotenv.Load()

	storage.InitializeDB()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	listings := app.Party("/listings")
	{
		listings.Get("/", routes.GetListings)
		listings.Post("/", routes.CreateListing)
		listings.Get("/{id}", routes.GetListing)
		listings.Put("/{id}", routes.UpdateListing)
		listings.Patch("/{id}", routes.PartialUpdateListing)
		listings.Delete("/{id}", routes.DeleteListing)
	}

	bookings := app.Party("/bookings")
	{
		bookings.Get("/", routes.GetBookings)
		bookings.Post("/", routes.CreateBooking)
		bookings.Get("/{id}", routes.GetBooking)
		bookings.Put("/{id}", routes.UpdateBooking)
		bookings.Patch("/{id}", routes.PartialUpdateBooking)
		bookings.Delete("/{id}", routes.DeleteBooking)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

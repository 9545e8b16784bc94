package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/qwabena37/alx-travel-app-0x01/routes"
	"github.com/qwabena37/alx-travel-app-0x01/storage"
)

func main() {
	listings := flag.Int("listings", 10, "Number of listings to create")
	bookings := flag.Int("bookings", 20, "Number of bookings to create")
	reviews := flag.Int("reviews", 15, "Number of reviews to create")
	flag.Parse()

	storage.InitializeDB()

	fmt.Println("Starting database seeding...")
	if err := routes.SeedDatabase(*listings, *bookings, *reviews); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}
}

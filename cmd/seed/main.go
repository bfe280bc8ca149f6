package main

import (
	"log"
	"os"

	"hotelbooking/internal/database"
	"hotelbooking/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelbooking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Seeding demo data...")
	if err := repository.Seed(db); err != nil {
		log.Fatal("Seed failed:", err)
	}

	log.Println("Done. Hotels, rooms, ticket types and tickets created.")
	log.Println("User 1 holds a paid hotel-inclusive ticket; user 2 has not paid; user 3 is remote-only.")
}

package main

import (
	"log"

	"github.com/Nakul-Shivaraj/SmartPantry/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Migrations completed")
}

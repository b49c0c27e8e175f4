package main

import (
	"log"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Running database migration...")

	_ = godotenv.Load()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		log.Fatal("Failed to create tables:", err)
	}
	if err := database.SeedDefaults(db); err != nil {
		log.Fatal("Failed to seed defaults:", err)
	}

	log.Println("Migration completed successfully")
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/joho/godotenv"
)

func main() {
	username := flag.String("username", "", "login name for the new user")
	password := flag.String("password", "", "initial password")
	role := flag.String("role", "admin", "role for the new user")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Println("Usage: add_user -username <name> -password <password> [-role admin]")
		os.Exit(1)
	}

	_ = godotenv.Load()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user, err := database.CreateUser(db, *username, hash, *role)
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s)\n", user.Username, user.Role)
}

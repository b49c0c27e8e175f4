package database

import (
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults creates the default admin account, belt ranks, age categories
// and fee settings. Every insert sits behind an explicit exists check so the
// routine is safe to run on every startup (and concurrently) without
// duplicating seed rows.
func SeedDefaults(db *sql.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedBeltRanks(db); err != nil {
		return err
	}
	if err := seedAgeCategories(db); err != nil {
		return err
	}
	if err := seedSetting(db, "monthly_fee", "500", "Monthly subscription fee in DA"); err != nil {
		return err
	}
	if err := seedSetting(db, "yearly_license", "300", "Annual license fee in DA"); err != nil {
		return err
	}
	log.Println("Database defaults seeded")
	return nil
}

func seedAdminUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE username = $1`, "admin").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO users (id, username, password_hash, role, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), "admin", string(hash), "admin", time.Now(), true)
	if err != nil {
		return err
	}
	log.Println("Default admin user created")
	return nil
}

func seedBeltRanks(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM belt_ranks`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	belts := []struct {
		Name  string
		Color string
	}{
		{"White", "white"},
		{"Yellow", "yellow"},
		{"Orange", "orange"},
		{"Green", "green"},
		{"Blue", "blue"},
		{"Purple", "purple"},
		{"Brown", "brown"},
		{"Black", "black"},
	}
	for i, b := range belts {
		_, err := db.Exec(`INSERT INTO belt_ranks (id, name, color, rank_order) VALUES ($1, $2, $3, $4)`,
			uuid.NewString(), b.Name, b.Color, i+1)
		if err != nil {
			return err
		}
	}
	log.Println("Default belt ranks created")
	return nil
}

func seedAgeCategories(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM age_categories`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	categories := []struct {
		Name        string
		MinAge      int
		MaxAge      int
		Description string
	}{
		{"Mini", 5, 7, "Beginners 5-7 years"},
		{"Poussins", 8, 9, "Kids 8-9 years"},
		{"Benjamins", 10, 11, "Kids 10-11 years"},
		{"Minimes", 12, 13, "Teens 12-13 years"},
		{"Cadets", 14, 15, "Teens 14-15 years"},
		{"Juniors", 16, 17, "Teens 16-17 years"},
		{"Seniors", 18, 99, "Adults 18+ years"},
	}
	for _, c := range categories {
		_, err := db.Exec(`INSERT INTO age_categories (id, name, min_age, max_age, description)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), c.Name, c.MinAge, c.MaxAge, c.Description)
		if err != nil {
			return err
		}
	}
	log.Println("Default age categories created")
	return nil
}

func seedSetting(db *sql.DB, key, value, description string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM settings WHERE key = $1`, key).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := db.Exec(`INSERT INTO settings (id, key, value, description) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), key, value, description)
	return err
}

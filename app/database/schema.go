package database

import (
	"database/sql"
	"log"
)

// CreateTables applies the schema. Statements are plain ANSI DDL that runs
// unchanged on SQLite and PostgreSQL; ids are UUID strings generated in Go
// and timestamps are always bound from Go, never from SQL functions.
func CreateTables(db *sql.DB) error {
	log.Println("Ensuring database schema...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'admin',
			created_at TIMESTAMP NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS belt_ranks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			rank_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS age_categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			min_age INTEGER NOT NULL DEFAULT 0,
			max_age INTEGER NOT NULL DEFAULT 0,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS athletes (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			date_of_birth TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT 'Male',
			address TEXT,
			phone TEXT,
			guardian_name TEXT,
			guardian_phone TEXT,
			joined_date TIMESTAMP NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			current_belt_rank_id TEXT,
			age_category_id TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS coaches (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			specialization TEXT,
			phone TEXT NOT NULL DEFAULT '',
			email TEXT,
			joined_date TIMESTAMP NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id TEXT PRIMARY KEY,
			athlete_id TEXT NOT NULL,
			amount NUMERIC NOT NULL DEFAULT 0,
			payment_type TEXT NOT NULL,
			payment_date TIMESTAMP NOT NULL,
			month_covered INTEGER,
			year_covered INTEGER,
			status TEXT NOT NULL,
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id TEXT PRIMARY KEY,
			athlete_id TEXT NOT NULL,
			date TIMESTAMP NOT NULL,
			status TEXT NOT NULL,
			class_time TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS belt_promotions (
			id TEXT PRIMARY KEY,
			athlete_id TEXT NOT NULL,
			from_belt_id TEXT,
			to_belt_id TEXT NOT NULL,
			promotion_date TIMESTAMP NOT NULL,
			examiner_name TEXT,
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS competitions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			date TIMESTAMP NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS competition_results (
			id TEXT PRIMARY KEY,
			competition_id TEXT NOT NULL,
			athlete_id TEXT NOT NULL,
			result TEXT NOT NULL DEFAULT 'Registered',
			category TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id TEXT PRIMARY KEY,
			key TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT '',
			description TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_athlete ON payments (athlete_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_athlete_date ON attendance (athlete_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_promotions_athlete ON belt_promotions (athlete_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_competition ON competition_results (competition_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Schema statement failed: %v", err)
			return err
		}
	}

	log.Println("Database schema is up to date")
	return nil
}

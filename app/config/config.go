package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	DB     *sql.DB
	Driver string
	DBPath string
}

var AppConfig *Config

// InitDB opens the club database. The default is a local SQLite file so the
// whole club lives in one portable database file; set DB_DRIVER=postgres to
// run against a shared PostgreSQL server instead.
func InitDB() {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite3"
	}

	var db *sql.DB
	var err error
	dbPath := ""

	switch driver {
	case "sqlite3":
		dbPath = os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = "galia.db"
		}
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", dbPath)
		db, err = sql.Open("sqlite3", dsn)
		if err != nil {
			log.Fatal("Failed to open database file:", err)
		}
		// SQLite allows a single writer; one pooled connection avoids
		// SQLITE_BUSY churn for our short CRUD requests.
		db.SetMaxOpenConns(1)
		log.Printf("Using SQLite database at %s", dbPath)
	case "postgres":
		psqlInfo := os.Getenv("DATABASE_URL")
		if psqlInfo == "" {
			host := getenvDefault("DB_HOST", "localhost")
			port := getenvDefault("DB_PORT", "5432")
			user := getenvDefault("DB_USER", "postgres")
			password := os.Getenv("DB_PASSWORD")
			dbname := getenvDefault("DB_NAME", "galia")
			psqlInfo = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				host, port, user, password, dbname)
		}
		db, err = sql.Open("postgres", psqlInfo)
		if err != nil {
			log.Fatal("Failed to open database connection:", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		log.Println("Using PostgreSQL database")
	default:
		log.Fatalf("Unsupported DB_DRIVER %q (want sqlite3 or postgres)", driver)
	}

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	AppConfig = &Config{
		DB:     db,
		Driver: driver,
		DBPath: dbPath,
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	if AppConfig == nil {
		return nil
	}
	return AppConfig.DB
}

func GetDriver() string {
	if AppConfig == nil {
		return ""
	}
	return AppConfig.Driver
}

// GetDBPath returns the raw database file path, or "" when the active driver
// is not file-based.
func GetDBPath() string {
	if AppConfig == nil {
		return ""
	}
	return AppConfig.DBPath
}

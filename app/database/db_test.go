package database

import (
	"database/sql"
	"testing"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// openTestDB gives each test its own in-memory SQLite database with the
// schema applied.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, CreateTables(db))
	return db
}

func createTestAthlete(t *testing.T, db *sql.DB, name string) *models.Athlete {
	t.Helper()
	a := &models.Athlete{FullName: name, Gender: models.Male}
	require.NoError(t, CreateAthlete(db, a))
	return a
}

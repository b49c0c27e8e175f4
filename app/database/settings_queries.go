package database

import (
	"database/sql"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/google/uuid"
)

func GetSetting(db *sql.DB, key string) (*models.Setting, error) {
	s := &models.Setting{}
	err := db.QueryRow(`SELECT id, key, value, description FROM settings WHERE key = $1`, key).
		Scan(&s.ID, &s.Key, &s.Value, &s.Description)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SetSetting upserts by key using an explicit exists check, matching how the
// seeding routine works.
func SetSetting(db *sql.DB, key, value string) error {
	existing, err := GetSetting(db, key)
	switch {
	case err == nil:
		_, err = db.Exec(`UPDATE settings SET value = $1 WHERE id = $2`, value, existing.ID)
		return err
	case err == sql.ErrNoRows:
		_, err = db.Exec(`INSERT INTO settings (id, key, value) VALUES ($1, $2, $3)`,
			uuid.NewString(), key, value)
		return err
	default:
		return err
	}
}

// GetSettingValue returns the stored string or the fallback when the key is
// absent.
func GetSettingValue(db *sql.DB, key, fallback string) string {
	s, err := GetSetting(db, key)
	if err != nil {
		return fallback
	}
	return s.Value
}

package database

import (
	"database/sql"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/google/uuid"
)

func GetCoaches(db *sql.DB) ([]*models.Coach, error) {
	query := `SELECT id, full_name, specialization, phone, email, joined_date, is_active
			  FROM coaches WHERE is_active = TRUE ORDER BY full_name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coaches []*models.Coach
	for rows.Next() {
		c := &models.Coach{}
		if err := rows.Scan(&c.ID, &c.FullName, &c.Specialization, &c.Phone, &c.Email, &c.JoinedDate, &c.IsActive); err != nil {
			return nil, err
		}
		coaches = append(coaches, c)
	}
	return coaches, rows.Err()
}

func CreateCoach(db *sql.DB, c *models.Coach) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.JoinedDate.IsZero() {
		c.JoinedDate = time.Now()
	}
	c.IsActive = true
	query := `INSERT INTO coaches (id, full_name, specialization, phone, email, joined_date, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := db.Exec(query, c.ID, c.FullName, c.Specialization, c.Phone, c.Email, c.JoinedDate, c.IsActive)
	return err
}

func UpdateCoach(db *sql.DB, c *models.Coach) error {
	query := `UPDATE coaches SET full_name = $1, specialization = $2, phone = $3, email = $4
			  WHERE id = $5`
	_, err := db.Exec(query, c.FullName, c.Specialization, c.Phone, c.Email, c.ID)
	return err
}

func DeactivateCoach(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE coaches SET is_active = FALSE WHERE id = $1`, id)
	return err
}

func CountActiveCoaches(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM coaches WHERE is_active = TRUE`).Scan(&count)
	return count, err
}

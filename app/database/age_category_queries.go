package database

import (
	"database/sql"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/google/uuid"
)

func GetAgeCategories(db *sql.DB) ([]*models.AgeCategory, error) {
	query := `SELECT id, name, min_age, max_age, description
			  FROM age_categories ORDER BY min_age`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.AgeCategory
	for rows.Next() {
		c := &models.AgeCategory{}
		if err := rows.Scan(&c.ID, &c.Name, &c.MinAge, &c.MaxAge, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func CreateAgeCategory(db *sql.DB, c *models.AgeCategory) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `INSERT INTO age_categories (id, name, min_age, max_age, description)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := db.Exec(query, c.ID, c.Name, c.MinAge, c.MaxAge, c.Description)
	return err
}

func UpdateAgeCategory(db *sql.DB, c *models.AgeCategory) error {
	query := `UPDATE age_categories SET name = $1, min_age = $2, max_age = $3, description = $4
			  WHERE id = $5`
	_, err := db.Exec(query, c.Name, c.MinAge, c.MaxAge, c.Description, c.ID)
	return err
}

// Age categories are reference data with no dependents, hard delete is fine.
func DeleteAgeCategory(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM age_categories WHERE id = $1`, id)
	return err
}

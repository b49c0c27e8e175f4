package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/google/uuid"
)

func GetCompetitions(db *sql.DB, search string) ([]*models.Competition, error) {
	query := `SELECT id, name, date, location, description FROM competitions`
	args := []any{}
	if search != "" {
		query += ` WHERE LOWER(name) LIKE $1`
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	query += ` ORDER BY date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var competitions []*models.Competition
	for rows.Next() {
		c := &models.Competition{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Date, &c.Location, &c.Description); err != nil {
			return nil, err
		}
		competitions = append(competitions, c)
	}
	return competitions, rows.Err()
}

func GetCompetitionByID(db *sql.DB, id string) (*models.Competition, error) {
	c := &models.Competition{}
	err := db.QueryRow(`SELECT id, name, date, location, description FROM competitions WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Date, &c.Location, &c.Description)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateCompetition(db *sql.DB, c *models.Competition) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `INSERT INTO competitions (id, name, date, location, description)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := db.Exec(query, c.ID, c.Name, c.Date, c.Location, c.Description)
	return err
}

func UpdateCompetition(db *sql.DB, c *models.Competition) error {
	query := `UPDATE competitions SET name = $1, date = $2, location = $3, description = $4
			  WHERE id = $5`
	_, err := db.Exec(query, c.Name, c.Date, c.Location, c.Description, c.ID)
	return err
}

// DeleteCompetition removes the competition and all of its result rows in
// one transaction; a partial failure must not leave orphaned results.
func DeleteCompetition(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM competition_results WHERE competition_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete results: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM competitions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete competition: %w", err)
	}
	return tx.Commit()
}

// UpsertCompetitionResult enforces the (competition, athlete, category)
// natural key: a second add for the same key updates the stored result
// instead of inserting a duplicate row.
func UpsertCompetitionResult(db *sql.DB, competitionID, athleteID, category string, result models.ResultStatus) error {
	if result == "" {
		result = models.ResultRegistered
	}

	var existingID string
	err := db.QueryRow(`SELECT id FROM competition_results
		WHERE competition_id = $1 AND athlete_id = $2 AND category = $3`,
		competitionID, athleteID, category).Scan(&existingID)

	switch {
	case err == nil:
		_, err = db.Exec(`UPDATE competition_results SET result = $1 WHERE id = $2`, result, existingID)
		return err
	case err == sql.ErrNoRows:
		_, err = db.Exec(`INSERT INTO competition_results (id, competition_id, athlete_id, result, category)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), competitionID, athleteID, result, category)
		return err
	default:
		return err
	}
}

func UpdateResultStatus(db *sql.DB, resultID string, status models.ResultStatus) error {
	_, err := db.Exec(`UPDATE competition_results SET result = $1 WHERE id = $2`, status, resultID)
	return err
}

func DeleteResult(db *sql.DB, resultID string) error {
	_, err := db.Exec(`DELETE FROM competition_results WHERE id = $1`, resultID)
	return err
}

// GetCompetitionResults returns a competition's entries joined with athlete
// names.
func GetCompetitionResults(db *sql.DB, competitionID string) ([]*models.ResultView, error) {
	query := `SELECT r.id, r.competition_id, r.athlete_id, r.result, r.category, a.full_name
			  FROM competition_results r
			  JOIN athletes a ON r.athlete_id = a.id
			  WHERE r.competition_id = $1
			  ORDER BY a.full_name`
	rows, err := db.Query(query, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*models.ResultView
	for rows.Next() {
		v := &models.ResultView{}
		if err := rows.Scan(&v.ID, &v.CompetitionID, &v.AthleteID, &v.Result, &v.Category, &v.AthleteName); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func GetAllResults(db *sql.DB) ([]*models.CompetitionResult, error) {
	rows, err := db.Query(`SELECT id, competition_id, athlete_id, result, category FROM competition_results`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.CompetitionResult
	for rows.Next() {
		r := &models.CompetitionResult{}
		if err := rows.Scan(&r.ID, &r.CompetitionID, &r.AthleteID, &r.Result, &r.Category); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func CountResultsForCompetition(db *sql.DB, competitionID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM competition_results WHERE competition_id = $1`, competitionID).Scan(&count)
	return count, err
}

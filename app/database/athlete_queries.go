package database

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/google/uuid"
)

// AthleteFilters represents filtering options for the athletes list.
// Empty or "all" values mean "no constraint".
type AthleteFilters struct {
	Search        string
	AgeCategoryID string
	BeltRankID    string
}

const athleteColumns = `id, full_name, date_of_birth, gender, address, phone,
	guardian_name, guardian_phone, joined_date, is_active, current_belt_rank_id, age_category_id`

func scanAthlete(row interface{ Scan(dest ...any) error }) (*models.Athlete, error) {
	a := &models.Athlete{}
	err := row.Scan(
		&a.ID, &a.FullName, &a.DateOfBirth, &a.Gender, &a.Address, &a.Phone,
		&a.GuardianName, &a.GuardianPhone, &a.JoinedDate, &a.IsActive,
		&a.CurrentBeltRankID, &a.AgeCategoryID,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetAthletes returns active athletes ordered by name, optionally filtered.
func GetAthletes(db *sql.DB, filters AthleteFilters) ([]*models.Athlete, error) {
	query := `SELECT ` + athleteColumns + ` FROM athletes WHERE is_active = TRUE`
	args := []any{}

	if filters.Search != "" {
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		query += ` AND LOWER(full_name) LIKE $` + strconv.Itoa(len(args))
	}
	if filters.AgeCategoryID != "" && filters.AgeCategoryID != "all" {
		args = append(args, filters.AgeCategoryID)
		query += ` AND age_category_id = $` + strconv.Itoa(len(args))
	}
	if filters.BeltRankID != "" && filters.BeltRankID != "all" {
		args = append(args, filters.BeltRankID)
		query += ` AND current_belt_rank_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY full_name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var athletes []*models.Athlete
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, a)
	}
	return athletes, rows.Err()
}

func GetAthleteByID(db *sql.DB, id string) (*models.Athlete, error) {
	row := db.QueryRow(`SELECT `+athleteColumns+` FROM athletes WHERE id = $1`, id)
	return scanAthlete(row)
}

func CreateAthlete(db *sql.DB, a *models.Athlete) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.JoinedDate.IsZero() {
		a.JoinedDate = time.Now()
	}
	a.IsActive = true
	query := `INSERT INTO athletes (` + athleteColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := db.Exec(query,
		a.ID, a.FullName, a.DateOfBirth, a.Gender, a.Address, a.Phone,
		a.GuardianName, a.GuardianPhone, a.JoinedDate, a.IsActive,
		a.CurrentBeltRankID, a.AgeCategoryID,
	)
	return err
}

func UpdateAthlete(db *sql.DB, a *models.Athlete) error {
	query := `UPDATE athletes SET full_name = $1, date_of_birth = $2, gender = $3,
			  address = $4, phone = $5, guardian_name = $6, guardian_phone = $7,
			  current_belt_rank_id = $8, age_category_id = $9
			  WHERE id = $10`
	_, err := db.Exec(query,
		a.FullName, a.DateOfBirth, a.Gender, a.Address, a.Phone,
		a.GuardianName, a.GuardianPhone, a.CurrentBeltRankID, a.AgeCategoryID, a.ID,
	)
	return err
}

// DeactivateAthlete soft-deletes: the row stays so ledgers keep resolving.
func DeactivateAthlete(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE athletes SET is_active = FALSE WHERE id = $1`, id)
	return err
}

func CountActiveAthletes(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM athletes WHERE is_active = TRUE`).Scan(&count)
	return count, err
}

func GetRecentAthletes(db *sql.DB, limit int) ([]*models.Athlete, error) {
	query := `SELECT ` + athleteColumns + ` FROM athletes WHERE is_active = TRUE
			  ORDER BY joined_date DESC LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var athletes []*models.Athlete
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, a)
	}
	return athletes, rows.Err()
}

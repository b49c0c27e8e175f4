package database

import (
	"database/sql"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/google/uuid"
)

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, role, created_at, is_active
			  FROM users WHERE username = $1 AND is_active = TRUE`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.CreatedAt, &user.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, role, created_at, is_active
			  FROM users WHERE id = $1 AND is_active = TRUE`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.CreatedAt, &user.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(db *sql.DB, username, passwordHash, role string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}
	query := `INSERT INTO users (id, username, password_hash, role, created_at, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := db.Exec(query, user.ID, user.Username, user.PasswordHash, user.Role, user.CreatedAt, user.IsActive)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func UpdateUserPassword(db *sql.DB, userID string, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`
	_, err := db.Exec(query, passwordHash, userID)
	return err
}

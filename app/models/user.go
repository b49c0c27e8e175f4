package models

import "time"

// User is a login account for the club software (admin or operator).
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username" validate:"required"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

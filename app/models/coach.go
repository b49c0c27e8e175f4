package models

import "time"

// Coach is a club trainer. Soft-deleted like athletes.
type Coach struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name" validate:"required"`
	Specialization *string   `json:"specialization,omitempty"`
	Phone          string    `json:"phone" validate:"required"`
	Email          *string   `json:"email,omitempty" validate:"omitempty,email"`
	JoinedDate     time.Time `json:"joined_date"`
	IsActive       bool      `json:"is_active"`
}

package models

import "time"

// Athlete is a registered club member. Athletes are never hard-deleted;
// removal sets IsActive to false so ledgers keep referring to them.
type Athlete struct {
	ID                string    `json:"id"`
	FullName          string    `json:"full_name" validate:"required"`
	DateOfBirth       string    `json:"date_of_birth"`
	Gender            Gender    `json:"gender" validate:"required,oneof=Male Female"`
	Address           *string   `json:"address,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	GuardianName      *string   `json:"guardian_name,omitempty"`
	GuardianPhone     *string   `json:"guardian_phone,omitempty"`
	JoinedDate        time.Time `json:"joined_date"`
	IsActive          bool      `json:"is_active"`
	CurrentBeltRankID *string   `json:"current_belt_rank_id,omitempty"`
	AgeCategoryID     *string   `json:"age_category_id,omitempty"`
}

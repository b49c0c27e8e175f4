package models

import "time"

// Competition is an event athletes can be registered for.
type Competition struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description *string   `json:"description,omitempty"`
}

// CompetitionResult is one athlete's entry in one competition category.
// (CompetitionID, AthleteID, Category) is the natural key, enforced by
// upsert logic rather than a database constraint.
type CompetitionResult struct {
	ID            string       `json:"id"`
	CompetitionID string       `json:"competition_id"`
	AthleteID     string       `json:"athlete_id"`
	Result        ResultStatus `json:"result"`
	Category      string       `json:"category"`
}

// ResultView is a result joined with the athlete's name.
type ResultView struct {
	CompetitionResult
	AthleteName string `json:"athlete_name"`
}

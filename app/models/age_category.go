package models

// AgeCategory is a descriptive age band (Mini, Poussins, ...). The band is
// not enforced against an athlete's actual age.
type AgeCategory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	MinAge      int     `json:"min_age" validate:"gte=0"`
	MaxAge      int     `json:"max_age" validate:"gtefield=MinAge"`
	Description *string `json:"description,omitempty"`
}

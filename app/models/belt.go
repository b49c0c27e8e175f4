package models

import "time"

// BeltRank is an ordered reference entry. RankOrder only controls display
// order; progression does not enforce it (any rank can follow any rank).
type BeltRank struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	Color     string `json:"color"`
	RankOrder int    `json:"rank_order"`
}

// BeltPromotion is one entry in the append-only promotion ledger.
// FromBeltID snapshots the athlete's rank at the moment of promotion.
type BeltPromotion struct {
	ID            string    `json:"id"`
	AthleteID     string    `json:"athlete_id"`
	FromBeltID    *string   `json:"from_belt_id,omitempty"`
	ToBeltID      string    `json:"to_belt_id"`
	PromotionDate time.Time `json:"promotion_date"`
	ExaminerName  *string   `json:"examiner_name,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

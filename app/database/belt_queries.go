package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/google/uuid"
)

func GetBeltRanks(db *sql.DB) ([]*models.BeltRank, error) {
	query := `SELECT id, name, color, rank_order FROM belt_ranks ORDER BY rank_order`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var belts []*models.BeltRank
	for rows.Next() {
		b := &models.BeltRank{}
		if err := rows.Scan(&b.ID, &b.Name, &b.Color, &b.RankOrder); err != nil {
			return nil, err
		}
		belts = append(belts, b)
	}
	return belts, rows.Err()
}

// GetBeltNameMap returns id -> name for resolving ranks in merged views.
func GetBeltNameMap(db *sql.DB) (map[string]string, error) {
	belts, err := GetBeltRanks(db)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(belts))
	for _, b := range belts {
		names[b.ID] = b.Name
	}
	return names, nil
}

func CreateBeltRank(db *sql.DB, b *models.BeltRank) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	query := `INSERT INTO belt_ranks (id, name, color, rank_order) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, b.ID, b.Name, b.Color, b.RankOrder)
	return err
}

func UpdateBeltRank(db *sql.DB, b *models.BeltRank) error {
	query := `UPDATE belt_ranks SET name = $1, color = $2, rank_order = $3 WHERE id = $4`
	_, err := db.Exec(query, b.Name, b.Color, b.RankOrder, b.ID)
	return err
}

func DeleteBeltRank(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM belt_ranks WHERE id = $1`, id)
	return err
}

// RecordPromotion appends a promotion and moves the athlete to the new rank
// in a single transaction. The promotion row snapshots the athlete's rank
// before the move as from_belt_id; a promotion without the athlete update
// (or the reverse) must never be observable. A missing athlete or belt id is
// a silent no-op, only logged.
func RecordPromotion(db *sql.DB, athleteID, toBeltID string, date time.Time, examiner, notes string) (*models.BeltPromotion, error) {
	if athleteID == "" || toBeltID == "" {
		log.Printf("RecordPromotion skipped: athlete=%q belt=%q", athleteID, toBeltID)
		return nil, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var fromBelt *string
	err = tx.QueryRow(`SELECT current_belt_rank_id FROM athletes WHERE id = $1`, athleteID).Scan(&fromBelt)
	if err != nil {
		return nil, fmt.Errorf("failed to load athlete %s: %w", athleteID, err)
	}

	p := &models.BeltPromotion{
		ID:            uuid.NewString(),
		AthleteID:     athleteID,
		FromBeltID:    fromBelt,
		ToBeltID:      toBeltID,
		PromotionDate: date,
	}
	if examiner != "" {
		p.ExaminerName = &examiner
	}
	if notes != "" {
		p.Notes = &notes
	}

	_, err = tx.Exec(`INSERT INTO belt_promotions (id, athlete_id, from_belt_id, to_belt_id, promotion_date, examiner_name, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.AthleteID, p.FromBeltID, p.ToBeltID, p.PromotionDate, p.ExaminerName, p.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to insert promotion: %w", err)
	}

	_, err = tx.Exec(`UPDATE athletes SET current_belt_rank_id = $1 WHERE id = $2`, toBeltID, athleteID)
	if err != nil {
		return nil, fmt.Errorf("failed to update athlete rank: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPromotionHistory returns an athlete's promotions, most recent first.
func GetPromotionHistory(db *sql.DB, athleteID string) ([]*models.BeltPromotion, error) {
	query := `SELECT id, athlete_id, from_belt_id, to_belt_id, promotion_date, examiner_name, notes
			  FROM belt_promotions WHERE athlete_id = $1 ORDER BY promotion_date DESC`
	rows, err := db.Query(query, athleteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promotions []*models.BeltPromotion
	for rows.Next() {
		p := &models.BeltPromotion{}
		if err := rows.Scan(&p.ID, &p.AthleteID, &p.FromBeltID, &p.ToBeltID, &p.PromotionDate, &p.ExaminerName, &p.Notes); err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}
	return promotions, rows.Err()
}

// DeletePromotion removes the ledger row only. The athlete's
// current_belt_rank_id is left as-is even when the deleted promotion set it;
// operators asked for removal of the record, not a rollback of the rank.
func DeletePromotion(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM belt_promotions WHERE id = $1`, id)
	return err
}

func CountPromotionsSince(db *sql.DB, since time.Time) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM belt_promotions WHERE promotion_date >= $1`, since).Scan(&count)
	return count, err
}

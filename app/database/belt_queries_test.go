package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBelt(t *testing.T, db *sql.DB, name string, order int) *models.BeltRank {
	t.Helper()
	b := &models.BeltRank{Name: name, Color: name, RankOrder: order}
	require.NoError(t, CreateBeltRank(db, b))
	return b
}

func TestRecordPromotionMovesAthlete(t *testing.T) {
	db := openTestDB(t)
	white := createTestBelt(t, db, "White", 1)
	yellow := createTestBelt(t, db, "Yellow", 2)

	athlete := &models.Athlete{FullName: "Karim Ziani", Gender: models.Male, CurrentBeltRankID: &white.ID}
	require.NoError(t, CreateAthlete(db, athlete))

	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	p, err := RecordPromotion(db, athlete.ID, yellow.ID, date, "Sensei Rachid", "clean kata")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.FromBeltID)
	assert.Equal(t, white.ID, *p.FromBeltID)
	assert.Equal(t, yellow.ID, p.ToBeltID)

	got, err := GetAthleteByID(db, athlete.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentBeltRankID)
	assert.Equal(t, yellow.ID, *got.CurrentBeltRankID)

	history, err := GetPromotionHistory(db, athlete.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestRecordPromotionUnknownAthleteLeavesNoRow(t *testing.T) {
	db := openTestDB(t)
	belt := createTestBelt(t, db, "Yellow", 2)

	_, err := RecordPromotion(db, "missing", belt.ID, time.Now(), "", "")
	require.Error(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM belt_promotions`).Scan(&count))
	assert.Equal(t, 0, count, "failed promotion must not leave a ledger row")
}

func TestRecordPromotionEmptyIDsIsNoop(t *testing.T) {
	db := openTestDB(t)

	p, err := RecordPromotion(db, "", "", time.Now(), "", "")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPromotionHistoryNewestFirst(t *testing.T) {
	db := openTestDB(t)
	white := createTestBelt(t, db, "White", 1)
	yellow := createTestBelt(t, db, "Yellow", 2)
	orange := createTestBelt(t, db, "Orange", 3)

	athlete := &models.Athlete{FullName: "Lina Cherif", Gender: models.Female, CurrentBeltRankID: &white.ID}
	require.NoError(t, CreateAthlete(db, athlete))

	first := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	_, err := RecordPromotion(db, athlete.ID, yellow.ID, first, "", "")
	require.NoError(t, err)
	_, err = RecordPromotion(db, athlete.ID, orange.ID, second, "", "")
	require.NoError(t, err)

	history, err := GetPromotionHistory(db, athlete.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, orange.ID, history[0].ToBeltID)
	assert.Equal(t, yellow.ID, history[1].ToBeltID)
}

func TestDeletePromotionKeepsCurrentRank(t *testing.T) {
	db := openTestDB(t)
	white := createTestBelt(t, db, "White", 1)
	yellow := createTestBelt(t, db, "Yellow", 2)

	athlete := &models.Athlete{FullName: "Amine Saidi", Gender: models.Male, CurrentBeltRankID: &white.ID}
	require.NoError(t, CreateAthlete(db, athlete))

	p, err := RecordPromotion(db, athlete.ID, yellow.ID, time.Now(), "", "")
	require.NoError(t, err)
	require.NoError(t, DeletePromotion(db, p.ID))

	history, err := GetPromotionHistory(db, athlete.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	// Deleting the record does not roll the athlete's rank back.
	got, err := GetAthleteByID(db, athlete.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentBeltRankID)
	assert.Equal(t, yellow.ID, *got.CurrentBeltRankID)
}

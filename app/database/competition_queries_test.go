package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCompetition(t *testing.T, db *sql.DB, name string) *models.Competition {
	t.Helper()
	c := &models.Competition{
		Name:     name,
		Date:     time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		Location: "Algiers",
	}
	require.NoError(t, CreateCompetition(db, c))
	return c
}

func TestUpsertCompetitionResultDefaultsToRegistered(t *testing.T) {
	db := openTestDB(t)
	comp := createTestCompetition(t, db, "Regional Open")
	athlete := createTestAthlete(t, db, "Karim Ziani")

	require.NoError(t, UpsertCompetitionResult(db, comp.ID, athlete.ID, "Kumite -60kg", ""))

	results, err := GetCompetitionResults(db, comp.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.ResultRegistered, results[0].Result)
	assert.Equal(t, "Karim Ziani", results[0].AthleteName)
}

func TestUpsertCompetitionResultNaturalKey(t *testing.T) {
	db := openTestDB(t)
	comp := createTestCompetition(t, db, "Regional Open")
	athlete := createTestAthlete(t, db, "Karim Ziani")

	require.NoError(t, UpsertCompetitionResult(db, comp.ID, athlete.ID, "Kumite -60kg", models.ResultRegistered))
	// Same (competition, athlete, category) updates instead of duplicating.
	require.NoError(t, UpsertCompetitionResult(db, comp.ID, athlete.ID, "Kumite -60kg", models.ResultGold))
	// A different category is a separate entry.
	require.NoError(t, UpsertCompetitionResult(db, comp.ID, athlete.ID, "Kata", models.ResultBronze))

	count, err := CountResultsForCompetition(db, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	results, err := GetCompetitionResults(db, comp.ID)
	require.NoError(t, err)
	byCategory := map[string]models.ResultStatus{}
	for _, r := range results {
		byCategory[r.Category] = r.Result
	}
	assert.Equal(t, models.ResultGold, byCategory["Kumite -60kg"])
	assert.Equal(t, models.ResultBronze, byCategory["Kata"])
}

func TestDeleteCompetitionCascades(t *testing.T) {
	db := openTestDB(t)
	comp := createTestCompetition(t, db, "Regional Open")
	other := createTestCompetition(t, db, "National Cup")
	athlete := createTestAthlete(t, db, "Lina Cherif")

	require.NoError(t, UpsertCompetitionResult(db, comp.ID, athlete.ID, "Kata", models.ResultGold))
	require.NoError(t, UpsertCompetitionResult(db, comp.ID, athlete.ID, "Kumite -55kg", models.ResultSilver))
	require.NoError(t, UpsertCompetitionResult(db, other.ID, athlete.ID, "Kata", models.ResultRegistered))

	require.NoError(t, DeleteCompetition(db, comp.ID))

	_, err := GetCompetitionByID(db, comp.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// No orphaned results; the other competition is untouched.
	all, err := GetAllResults(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, other.ID, all[0].CompetitionID)
}

func TestGetCompetitionsSearch(t *testing.T) {
	db := openTestDB(t)
	createTestCompetition(t, db, "Regional Open")
	createTestCompetition(t, db, "National Cup")

	all, err := GetCompetitions(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := GetCompetitions(db, "national")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "National Cup", found[0].Name)
}

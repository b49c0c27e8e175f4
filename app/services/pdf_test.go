package services

import (
	"testing"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPayload(t *testing.T) {
	assert.Equal(t, "GALIA:a1:Karim Ziani", QRPayload("a1", "Karim Ziani"))
}

func TestCardGridPosition(t *testing.T) {
	// First card starts a page at the margin.
	x, y, newPage := CardGridPosition(0)
	assert.True(t, newPage)
	assert.Equal(t, 15.0, x)
	assert.Equal(t, 15.0, y)

	// Second card sits to the right, same row.
	x, y, newPage = CardGridPosition(1)
	assert.False(t, newPage)
	assert.InDelta(t, 15.0+85.6+5.0, x, 0.001)
	assert.Equal(t, 15.0, y)

	// Third card wraps to the second row.
	x, y, newPage = CardGridPosition(2)
	assert.False(t, newPage)
	assert.Equal(t, 15.0, x)
	assert.InDelta(t, 15.0+53.98+5.0, y, 0.001)

	// The ninth card starts a fresh page.
	x, y, newPage = CardGridPosition(8)
	assert.True(t, newPage)
	assert.Equal(t, 15.0, x)
	assert.Equal(t, 15.0, y)
}

func testAthlete(id, name string) *models.Athlete {
	return &models.Athlete{
		ID:         id,
		FullName:   name,
		Gender:     models.Male,
		JoinedDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
}

func TestGenerateReceipt(t *testing.T) {
	notes := "paid in cash"
	month, year := 6, 2026
	payment := &models.Payment{
		ID:           "p1",
		AthleteID:    "a1",
		Amount:       decimal.NewFromInt(500),
		PaymentType:  models.TypeMonthlyFee,
		PaymentDate:  time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		MonthCovered: &month,
		YearCovered:  &year,
		Status:       models.PaymentPaid,
		Notes:        &notes,
	}

	out, err := GenerateReceipt(payment, testAthlete("a1", "Karim Ziani"))
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateCompetitionResultsPDF(t *testing.T) {
	comp := &models.Competition{
		ID:       "c1",
		Name:     "Regional Open",
		Date:     time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		Location: "Algiers",
	}
	results := []*models.ResultView{
		{
			CompetitionResult: models.CompetitionResult{
				ID: "r1", CompetitionID: "c1", AthleteID: "a1",
				Result: models.ResultGold, Category: "Kumite -60kg",
			},
			AthleteName: "Karim Ziani",
		},
	}

	out, err := GenerateCompetitionResultsPDF(comp, results)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))

	// Empty result lists still render.
	out, err = GenerateCompetitionResultsPDF(comp, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateIDCards(t *testing.T) {
	single, err := GenerateIDCard(testAthlete("a1", "Karim Ziani"), "White")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(single[:4]))

	// A batch larger than one sheet (2x4 per page).
	var athletes []*models.Athlete
	for i := 0; i < 9; i++ {
		athletes = append(athletes, testAthlete(string(rune('a'+i)), "Athlete"))
	}
	batch, err := GenerateAllIDCards(athletes, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(batch[:4]))

	empty, err := GenerateAllIDCards(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(empty[:4]))
}

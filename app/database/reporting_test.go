package database

import (
	"testing"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingAttendanceRate(t *testing.T) {
	records := []*models.Attendance{
		{Status: models.StatusPresent},
		{Status: models.StatusPresent},
		{Status: models.StatusAbsent},
	}
	// 2/3 rounded to one decimal.
	assert.Equal(t, 66.7, TrailingAttendanceRate(records))

	records = append(records, &models.Attendance{Status: models.StatusLate})
	assert.Equal(t, 75.0, TrailingAttendanceRate(records))

	assert.Equal(t, 0.0, TrailingAttendanceRate(nil))
}

func TestReportRange(t *testing.T) {
	start, end, err := ReportRange("2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), start)
	// The end date is inclusive, so the window extends a day past it.
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = ReportRange("January 1", "2026-01-31")
	assert.Error(t, err)
	_, _, err = ReportRange("2026-01-01", "")
	assert.Error(t, err)
}

func TestGetReportStats(t *testing.T) {
	db := openTestDB(t)
	athlete := createTestAthlete(t, db, "Karim Ziani")
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	old := testPayment(athlete.ID, 300, models.PaymentPaid, 1, 2026)
	old.PaymentDate = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, UpsertPayment(db, old))
	recent := testPayment(athlete.ID, 500, models.PaymentPartial, 6, 2026)
	recent.PaymentDate = time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, UpsertPayment(db, recent))
	skipped := testPayment(athlete.ID, 500, models.PaymentUnpaid, 6, 2026)
	require.NoError(t, UpsertPayment(db, skipped))

	// One attendance record inside the window, one outside.
	require.NoError(t, MarkAttendance(db, athlete.ID, now.AddDate(0, 0, -3), models.StatusPresent, now))
	require.NoError(t, MarkAttendance(db, athlete.ID, now.AddDate(0, 0, -60), models.StatusAbsent, now))

	stats, err := GetReportStats(db, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalAthletes)
	// Total income is all-time Paid+Partial.
	assert.Equal(t, "800", stats.TotalIncome.String())
	// Only the in-window record counts, and it was Present.
	assert.Equal(t, 100.0, stats.AttendanceRate)
	assert.Equal(t, 0, stats.PromotionsCount)
}

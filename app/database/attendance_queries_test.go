package database

import (
	"testing"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDay(t *testing.T) {
	items := []*models.AttendanceItem{}
	for i := 0; i < 7; i++ {
		items = append(items, &models.AttendanceItem{Status: models.StatusPresent})
	}
	items = append(items,
		&models.AttendanceItem{Status: models.StatusLate},
		&models.AttendanceItem{Status: models.StatusAbsent},
		&models.AttendanceItem{Status: models.StatusNone},
	)

	s := SummarizeDay(items)
	assert.Equal(t, 7, s.PresentCount)
	assert.Equal(t, 1, s.LateCount)
	assert.Equal(t, 1, s.AbsentCount)
	assert.Equal(t, 10, s.TotalCount)
	assert.Equal(t, 80, s.AttendanceRate)
}

func TestSummarizeDayEmpty(t *testing.T) {
	s := SummarizeDay(nil)
	assert.Equal(t, 0, s.TotalCount)
	assert.Equal(t, 0, s.AttendanceRate)
}

func TestMarkAttendanceUpsert(t *testing.T) {
	db := openTestDB(t)
	athlete := createTestAthlete(t, db, "Yacine Benali")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	morning := time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)
	require.NoError(t, MarkAttendance(db, athlete.ID, day, models.StatusPresent, morning))

	start, end := dayBounds(day)
	records, err := GetAttendanceInRange(db, start, end)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.StatusPresent, records[0].Status)
	require.NotNil(t, records[0].ClassTime)
	assert.Equal(t, "09:15", *records[0].ClassTime)

	// Re-marking with a new status updates in place.
	later := time.Date(2026, 3, 10, 10, 5, 0, 0, time.UTC)
	require.NoError(t, MarkAttendance(db, athlete.ID, day, models.StatusLate, later))

	records, err = GetAttendanceInRange(db, start, end)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.StatusLate, records[0].Status)
	assert.Equal(t, "10:05", *records[0].ClassTime)
}

func TestMarkAttendanceNoneClearsStatusOnly(t *testing.T) {
	db := openTestDB(t)
	athlete := createTestAthlete(t, db, "Lina Cherif")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	morning := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, MarkAttendance(db, athlete.ID, day, models.StatusPresent, morning))
	require.NoError(t, MarkAttendance(db, athlete.ID, day, models.StatusNone, morning.Add(time.Hour)))

	start, end := dayBounds(day)
	records, err := GetAttendanceInRange(db, start, end)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.StatusNone, records[0].Status)
	// The original class time survives the reset.
	require.NotNil(t, records[0].ClassTime)
	assert.Equal(t, "09:00", *records[0].ClassTime)
}

func TestMarkAttendanceNoneWithoutRecordIsNoop(t *testing.T) {
	db := openTestDB(t)
	athlete := createTestAthlete(t, db, "Amine Saidi")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, MarkAttendance(db, athlete.ID, day, models.StatusNone, time.Now()))

	start, end := dayBounds(day)
	records, err := GetAttendanceInRange(db, start, end)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetDayViewCoversRoster(t *testing.T) {
	db := openTestDB(t)
	marked := createTestAthlete(t, db, "Karim Ziani")
	createTestAthlete(t, db, "Sofiane Hamdi")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, MarkAttendance(db, marked.ID, day, models.StatusPresent, day.Add(9*time.Hour)))

	items, err := GetDayView(db, day)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byName := map[string]*models.AttendanceItem{}
	for _, item := range items {
		byName[item.FullName] = item
	}
	assert.Equal(t, models.StatusPresent, byName["Karim Ziani"].Status)
	assert.Equal(t, models.StatusNone, byName["Sofiane Hamdi"].Status)
	assert.Nil(t, byName["Sofiane Hamdi"].RecordID)
	assert.Equal(t, "Unranked", byName["Karim Ziani"].BeltName)

	s := SummarizeDay(items)
	assert.Equal(t, 2, s.TotalCount)
	assert.Equal(t, 50, s.AttendanceRate)
}

func TestFilterDayView(t *testing.T) {
	items := []*models.AttendanceItem{
		{FullName: "Karim Ziani"},
		{FullName: "Lina Cherif"},
	}
	assert.Len(t, FilterDayView(items, ""), 2)
	filtered := FilterDayView(items, "lina")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Lina Cherif", filtered[0].FullName)
	assert.Empty(t, FilterDayView(items, "xyz"))
}

package database

import (
	"database/sql"
	"math"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/shopspring/decimal"
)

// reportWindow is the fixed lookback for attendance rate and promotion
// counts on the reports page. It is independent of whatever date range the
// operator picked for exports.
const reportWindow = 30 * 24 * time.Hour

// GetReportStats computes the reporting summary. TotalAthletes and
// TotalIncome are all-time figures; AttendanceRate and PromotionsCount use
// the trailing 30-day window.
func GetReportStats(db *sql.DB, now time.Time) (*models.ReportStats, error) {
	stats := &models.ReportStats{TotalIncome: decimal.Zero}

	var err error
	stats.TotalAthletes, err = CountActiveAthletes(db)
	if err != nil {
		return nil, err
	}

	payments, err := GetAllPayments(db)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if countsTowardIncome(p.Status) {
			stats.TotalIncome = stats.TotalIncome.Add(p.Amount)
		}
	}

	since := now.Add(-reportWindow)
	records, err := GetAttendanceInRange(db, since, now.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	stats.AttendanceRate = TrailingAttendanceRate(records)

	stats.PromotionsCount, err = CountPromotionsSince(db, since)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// TrailingAttendanceRate is (present+late)/records as a percentage rounded
// to one decimal, 0.0 with no records. Unlike the day view, the denominator
// here is the record count, not the roster size.
func TrailingAttendanceRate(records []*models.Attendance) float64 {
	if len(records) == 0 {
		return 0.0
	}
	present := 0
	for _, r := range records {
		if r.Status == models.StatusPresent || r.Status == models.StatusLate {
			present++
		}
	}
	rate := float64(present) / float64(len(records)) * 100
	return math.Round(rate*10) / 10
}

// ReportRange parses the operator's inclusive [start, end] date strings into
// the half-open [start, end+24h) window used by export queries.
func ReportRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end.Add(24 * time.Hour), nil
}

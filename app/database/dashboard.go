package database

import (
	"database/sql"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/shopspring/decimal"
)

// GetDashboardStats builds the landing-page summary. MonthlyRevenue and
// UnpaidAthletes both key on the covered period for the current month.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{MonthlyRevenue: decimal.Zero}

	var err error
	stats.TotalAthletes, err = CountActiveAthletes(db)
	if err != nil {
		return nil, err
	}

	stats.ActiveCoaches, err = CountActiveCoaches(db)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payments, err := getPaymentsForCoveredMonth(db, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if countsTowardIncome(p.Status) {
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(p.Amount)
		}
	}
	stats.UnpaidAthletes = ComputeUnpaidAthletes(stats.TotalAthletes, payments, now)

	stats.RecentAthletes, err = GetRecentAthletes(db, 5)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func getPaymentsForCoveredMonth(db *sql.DB, month, year int) ([]*models.Payment, error) {
	rows, err := db.Query(`SELECT `+paymentColumns+` FROM payments
		WHERE month_covered = $1 AND year_covered = $2`, month, year)
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

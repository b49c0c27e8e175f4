package models

import "github.com/shopspring/decimal"

// DashboardStats is the landing-page summary. UnpaidAthletes is the count of
// active athletes without a payment covering the current month; it is a
// looser metric than the payment ledger's row-based UnpaidCount and the two
// are reported separately on purpose.
type DashboardStats struct {
	TotalAthletes  int             `json:"total_athletes"`
	ActiveCoaches  int             `json:"active_coaches"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	UnpaidAthletes int             `json:"unpaid_athletes"`
	RecentAthletes []*Athlete      `json:"recent_athletes"`
}

// ReportStats is the reporting page summary. AttendanceRate and
// PromotionsCount always use a fixed trailing 30-day window regardless of
// the report date range the operator picked; TotalAthletes and TotalIncome
// ignore date ranges entirely.
type ReportStats struct {
	TotalAthletes   int             `json:"total_athletes"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	AttendanceRate  float64         `json:"attendance_rate"`
	PromotionsCount int             `json:"promotions_count"`
}

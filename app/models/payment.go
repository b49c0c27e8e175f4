package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one row in the payment ledger. MonthCovered/YearCovered are the
// period the payment is credited toward, independent of PaymentDate. Several
// payments may cover the same period (partial + balance), so there is no
// natural-key dedup here.
type Payment struct {
	ID           string          `json:"id"`
	AthleteID    string          `json:"athlete_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentType  PaymentType     `json:"payment_type" validate:"required"`
	PaymentDate  time.Time       `json:"payment_date"`
	MonthCovered *int            `json:"month_covered,omitempty" validate:"omitempty,min=1,max=12"`
	YearCovered  *int            `json:"year_covered,omitempty"`
	Status       PaymentStatus   `json:"status" validate:"required,oneof=Paid Unpaid Partial Overdue"`
	Notes        *string         `json:"notes,omitempty"`
}

// PaymentView is a payment joined with the athlete's name for list display.
type PaymentView struct {
	Payment
	AthleteName string `json:"athlete_name"`
}

// PaymentAggregates are the ledger's own metrics. UnpaidCount counts unpaid
// payment rows; the dashboard carries a different, athlete-based unpaid
// metric and the two are deliberately kept separate.
type PaymentAggregates struct {
	TotalIncome    decimal.Decimal `json:"total_income"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	UnpaidCount    int             `json:"unpaid_count"`
}

package database

import (
	"database/sql"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const paymentColumns = `id, athlete_id, amount, payment_type, payment_date,
	month_covered, year_covered, status, notes`

// UpsertPayment overwrites every field of an existing row when an id is
// given, otherwise inserts. There is no natural-key dedup: operators record
// partial and balance payments against the same covered period as separate
// rows.
func UpsertPayment(db *sql.DB, p *models.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
		if p.PaymentDate.IsZero() {
			p.PaymentDate = time.Now()
		}
		query := `INSERT INTO payments (` + paymentColumns + `)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		_, err := db.Exec(query,
			p.ID, p.AthleteID, p.Amount, p.PaymentType, p.PaymentDate,
			p.MonthCovered, p.YearCovered, p.Status, p.Notes)
		return err
	}

	query := `UPDATE payments SET athlete_id = $1, amount = $2, payment_type = $3,
			  payment_date = $4, month_covered = $5, year_covered = $6, status = $7, notes = $8
			  WHERE id = $9`
	_, err := db.Exec(query,
		p.AthleteID, p.Amount, p.PaymentType, p.PaymentDate,
		p.MonthCovered, p.YearCovered, p.Status, p.Notes, p.ID)
	return err
}

func GetPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	p := &models.Payment{}
	err := db.QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id).Scan(
		&p.ID, &p.AthleteID, &p.Amount, &p.PaymentType, &p.PaymentDate,
		&p.MonthCovered, &p.YearCovered, &p.Status, &p.Notes)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Payments are hard-deleted; the ledger keeps no tombstones.
func DeletePayment(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM payments WHERE id = $1`, id)
	return err
}

func scanPayments(rows *sql.Rows) ([]*models.Payment, error) {
	defer rows.Close()
	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.AthleteID, &p.Amount, &p.PaymentType, &p.PaymentDate,
			&p.MonthCovered, &p.YearCovered, &p.Status, &p.Notes); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func GetAllPayments(db *sql.DB) ([]*models.Payment, error) {
	rows, err := db.Query(`SELECT ` + paymentColumns + ` FROM payments`)
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

// GetPaymentsInRange filters on payment_date (when paid, not the covered
// period) over the half-open [start, end).
func GetPaymentsInRange(db *sql.DB, start, end time.Time) ([]*models.Payment, error) {
	rows, err := db.Query(`SELECT `+paymentColumns+` FROM payments
		WHERE payment_date >= $1 AND payment_date < $2 ORDER BY payment_date`, start, end)
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

// GetPaymentsWithAthletes returns the full ledger joined with athlete names,
// newest payment first.
func GetPaymentsWithAthletes(db *sql.DB) ([]*models.PaymentView, error) {
	query := `SELECT p.id, p.athlete_id, p.amount, p.payment_type, p.payment_date,
			  p.month_covered, p.year_covered, p.status, p.notes, a.full_name
			  FROM payments p
			  JOIN athletes a ON p.athlete_id = a.id
			  ORDER BY p.payment_date DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*models.PaymentView
	for rows.Next() {
		v := &models.PaymentView{}
		if err := rows.Scan(&v.ID, &v.AthleteID, &v.Amount, &v.PaymentType, &v.PaymentDate,
			&v.MonthCovered, &v.YearCovered, &v.Status, &v.Notes, &v.AthleteName); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// countsTowardIncome reports whether a payment's amount is treated as money
// actually received.
func countsTowardIncome(status models.PaymentStatus) bool {
	return status == models.PaymentPaid || status == models.PaymentPartial
}

// ComputePaymentAggregates derives the ledger metrics from loaded rows.
// MonthlyRevenue keys on the covered period (month_covered/year_covered),
// not on when the payment was made. UnpaidCount counts unpaid rows, which is
// intentionally different from the dashboard's athlete-based unpaid metric.
func ComputePaymentAggregates(payments []*models.Payment, asOf time.Time) models.PaymentAggregates {
	agg := models.PaymentAggregates{
		TotalIncome:    decimal.Zero,
		MonthlyRevenue: decimal.Zero,
	}
	month := int(asOf.Month())
	year := asOf.Year()
	for _, p := range payments {
		if countsTowardIncome(p.Status) {
			agg.TotalIncome = agg.TotalIncome.Add(p.Amount)
			if p.MonthCovered != nil && p.YearCovered != nil &&
				*p.MonthCovered == month && *p.YearCovered == year {
				agg.MonthlyRevenue = agg.MonthlyRevenue.Add(p.Amount)
			}
		}
		if p.Status == models.PaymentUnpaid || p.Status == models.PaymentOverdue {
			agg.UnpaidCount++
		}
	}
	return agg
}

// ComputeUnpaidAthletes is the dashboard's looser unpaid metric: active
// athletes minus those with any payment covering the current month, floored
// at zero.
func ComputeUnpaidAthletes(activeAthletes int, payments []*models.Payment, asOf time.Time) int {
	month := int(asOf.Month())
	year := asOf.Year()
	payers := make(map[string]struct{})
	for _, p := range payments {
		if p.MonthCovered != nil && p.YearCovered != nil &&
			*p.MonthCovered == month && *p.YearCovered == year {
			payers[p.AthleteID] = struct{}{}
		}
	}
	unpaid := activeAthletes - len(payers)
	if unpaid < 0 {
		return 0
	}
	return unpaid
}

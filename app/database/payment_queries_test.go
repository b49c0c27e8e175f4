package database

import (
	"testing"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func testPayment(athleteID string, amount int64, status models.PaymentStatus, month, year int) *models.Payment {
	return &models.Payment{
		AthleteID:    athleteID,
		Amount:       decimal.NewFromInt(amount),
		PaymentType:  models.TypeMonthlyFee,
		Status:       status,
		MonthCovered: intPtr(month),
		YearCovered:  intPtr(year),
	}
}

func TestComputePaymentAggregates(t *testing.T) {
	asOf := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	payments := []*models.Payment{
		testPayment("a1", 500, models.PaymentPaid, 6, 2026),
		testPayment("a2", 200, models.PaymentPartial, 6, 2026),
		testPayment("a3", 300, models.PaymentPaid, 5, 2026),
		testPayment("a4", 500, models.PaymentUnpaid, 6, 2026),
	}

	agg := ComputePaymentAggregates(payments, asOf)
	assert.True(t, agg.TotalIncome.Equal(decimal.NewFromInt(1000)), "total income: %s", agg.TotalIncome)
	assert.True(t, agg.MonthlyRevenue.Equal(decimal.NewFromInt(700)), "monthly revenue: %s", agg.MonthlyRevenue)
	assert.Equal(t, 1, agg.UnpaidCount)
}

func TestComputePaymentAggregatesEmpty(t *testing.T) {
	agg := ComputePaymentAggregates(nil, time.Now())
	assert.True(t, agg.TotalIncome.IsZero())
	assert.True(t, agg.MonthlyRevenue.IsZero())
	assert.Equal(t, 0, agg.UnpaidCount)
}

func TestComputeUnpaidAthletes(t *testing.T) {
	asOf := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	payments := []*models.Payment{
		testPayment("a1", 500, models.PaymentPaid, 6, 2026),
		testPayment("a1", 100, models.PaymentPartial, 6, 2026),
		testPayment("a2", 500, models.PaymentPaid, 5, 2026),
	}

	// a1 covered the current month twice but counts once; a2 only covered
	// May.
	assert.Equal(t, 2, ComputeUnpaidAthletes(3, payments, asOf))

	// Payers who are no longer active can push the naive difference
	// negative; the metric floors at zero.
	assert.Equal(t, 0, ComputeUnpaidAthletes(0, payments, asOf))
}

func TestUpsertPaymentInsertThenUpdate(t *testing.T) {
	db := openTestDB(t)
	athlete := createTestAthlete(t, db, "Karim Ziani")

	p := testPayment(athlete.ID, 500, models.PaymentPaid, 6, 2026)
	require.NoError(t, UpsertPayment(db, p))
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.PaymentDate.IsZero())

	p.Amount = decimal.NewFromInt(250)
	p.Status = models.PaymentPartial
	require.NoError(t, UpsertPayment(db, p))

	all, err := GetAllPayments(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, models.PaymentPartial, all[0].Status)
}

func TestGetPaymentsWithAthletes(t *testing.T) {
	db := openTestDB(t)
	athlete := createTestAthlete(t, db, "Lina Cherif")

	p := testPayment(athlete.ID, 500, models.PaymentPaid, 6, 2026)
	p.PaymentDate = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, UpsertPayment(db, p))

	views, err := GetPaymentsWithAthletes(db)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Lina Cherif", views[0].AthleteName)
}

func TestGetPaymentsInRangeIsHalfOpen(t *testing.T) {
	db := openTestDB(t)
	athlete := createTestAthlete(t, db, "Amine Saidi")

	inside := testPayment(athlete.ID, 100, models.PaymentPaid, 6, 2026)
	inside.PaymentDate = time.Date(2026, 6, 30, 23, 0, 0, 0, time.UTC)
	require.NoError(t, UpsertPayment(db, inside))

	boundary := testPayment(athlete.ID, 100, models.PaymentPaid, 7, 2026)
	boundary.PaymentDate = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, UpsertPayment(db, boundary))

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	got, err := GetPaymentsInRange(db, start, end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)
}

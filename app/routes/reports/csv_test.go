package reports

import (
	"testing"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHeaders(t *testing.T) {
	assert.Equal(t, []string{"ID", "Full Name", "Gender", "Phone", "Belt Rank"}, AthleteReportRows(nil)[0])
	assert.Equal(t, []string{"ID", "Athlete ID", "Amount", "Type", "Date", "Status"}, PaymentReportRows(nil)[0])
	assert.Equal(t, []string{"Date", "Athlete ID", "Status", "Time"}, AttendanceReportRows(nil)[0])
	assert.Equal(t, []string{"Competition", "Athlete ID", "Result", "Category"}, CompetitionReportRows(nil)[0])
}

func TestPaymentReportRows(t *testing.T) {
	amount, err := decimal.NewFromString("1250.50")
	require.NoError(t, err)
	p := &models.Payment{
		ID:          "p1",
		AthleteID:   "a1",
		Amount:      amount,
		PaymentType: models.TypeMonthlyFee,
		PaymentDate: time.Date(2026, 6, 5, 14, 30, 0, 0, time.UTC),
		Status:      models.PaymentPaid,
	}

	rows := PaymentReportRows([]*models.Payment{p})
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"p1", "a1", "1250.5", "Monthly Fee", "2026-06-05", "Paid"}, rows[1])
}

func TestAthleteReportRowsOptionalFields(t *testing.T) {
	phone := "0550123456"
	rows := AthleteReportRows([]*models.Athlete{
		{ID: "a1", FullName: "Karim Ziani", Gender: models.Male, Phone: &phone},
		{ID: "a2", FullName: "Lina Cherif", Gender: models.Female},
	})
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a1", "Karim Ziani", "Male", "0550123456", ""}, rows[1])
	assert.Equal(t, []string{"a2", "Lina Cherif", "Female", "", ""}, rows[2])
}

func TestEncodeCSV(t *testing.T) {
	out, err := EncodeCSV([][]string{{"a", "b"}, {"1", "2"}})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(out))
}
